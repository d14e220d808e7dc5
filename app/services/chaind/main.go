package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ardanlabs/conf/v3"
	"github.com/ardanlabs/hashchain/foundation/events"
	"github.com/ardanlabs/hashchain/foundation/hashchain"
	"github.com/ardanlabs/hashchain/foundation/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("CHAIND")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Chain struct {
			Difficulty int      `conf:"default:3"`
			Payloads   []string `conf:"default:asdfadfas;foo;bar;baz;egg;balls"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	// Parse will set the defaults and then look for any overriding values
	// in environment variables and command line flags.
	const prefix = "CHAIND"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	// Display the current configuration to the logs.
	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Events Support

	// The chain reports mining and verification progress through an event
	// handler. Relay those events into the log through the events fan-out.
	evts := events.New()

	subID := uuid.NewString()
	ch := evts.Acquire(subID)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range ch {
			log.Infow("chain event", "msg", msg)
		}
	}()

	ev := func(v string, args ...any) {
		evts.Send(fmt.Sprintf(v, args...))
	}

	// =========================================================================
	// Chain Support

	chain := hashchain.New(cfg.Chain.Difficulty, ev)

	for _, payload := range cfg.Chain.Payloads {
		chain.Add(payload)
	}

	if err := chain.Verify(); err != nil {
		return fmt.Errorf("verifying chain: %w", err)
	}
	log.Infow("chain verified", "blocks", chain.Length(), "difficulty", chain.Difficulty())

	fmt.Println(chain)

	// Stop the event relay before returning.
	evts.Shutdown()
	wg.Wait()

	return nil
}

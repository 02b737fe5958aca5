/*
 * Copyright (c) 2023-present unTill Pro, Ltd.
 * @author Maxim Geraskin
 *
 * Modifications copyright (c) 2026-present unTill Software Development Group B.V.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"github.com/uagate/uatypes/pkg/goutils/logger"
)

// Executes command with context which is cancelled on interrupt signal
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(cmd.ExecuteContext)
}

func goAndCatchInterrupt(f func(ctx context.Context) error) (err error) {

	var signals = make(chan os.Signal, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signal.Notify(signals, os.Interrupt)
	defer signal.Stop(signals)

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = f(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	logger.Verbose("waiting for function to finish...")
	wg.Wait()
	return err
}

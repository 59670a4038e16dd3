package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/eduline/elearn-client/internal/client/notifications"
	"github.com/eduline/elearn-client/internal/client/realtime"
)

func (c *Cli) runNotifications(ctx context.Context) error {
	if err := c.requireAuthorized(ctx); err != nil {
		return err
	}

	creds, err := c.store.GetCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		printed  int
		pipeline *notifications.Pipeline
	)
	onChange := func() {
		mu.Lock()
		defer mu.Unlock()
		entries := pipeline.Entries()
		if printed > len(entries) {
			// entries were dismissed, nothing new to print
			printed = len(entries)
			return
		}
		for ; printed < len(entries); printed++ {
			e := entries[printed]
			c.io.Printf("[%d] %s\n", e.ID, e.Body)
		}
	}
	pipeline = notifications.NewPipeline(c.apiClient, onChange)

	c.io.Println("=== Notifications ===")
	if err := pipeline.Hydrate(ctx); err != nil {
		return err
	}
	if len(pipeline.Entries()) == 0 {
		c.io.Println("No notifications available.")
	}

	channel, err := c.dialer.Dial(ctx, realtime.PurposeNotifications, creds.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to open notifications stream: %w", err)
	}
	defer func() {
		_ = channel.Close()
	}()

	done := make(chan struct{})
	go func() {
		pipeline.Run(ctx, channel.Events())
		close(done)
	}()

	c.io.Println("Following live updates. Commands: dismiss <id>, /quit.")

	for {
		select {
		case <-done:
			c.io.Println("Connection closed.")
			return nil
		default:
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			return nil
		}
		switch {
		case line == "/quit":
			return nil
		case strings.HasPrefix(line, "dismiss "):
			id, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "dismiss ")), 10, 64)
			if err != nil {
				c.io.Println("usage: dismiss <id>")
				continue
			}
			// A failed delete keeps the entry visible.
			if err := pipeline.Dismiss(ctx, id); err != nil {
				c.io.Printf("dismiss failed: %v\n", err)
				continue
			}
			c.io.Printf("Dismissed notification %d.\n", id)
		case line == "":
			continue
		default:
			c.io.Println("Commands: dismiss <id>, /quit.")
		}
	}
}

package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/eduline/elearn-client/internal/client/chat"
	"github.com/eduline/elearn-client/internal/client/identity"
	"github.com/eduline/elearn-client/internal/client/realtime"
)

func (c *Cli) runChat(ctx context.Context) error {
	if err := c.requireAuthorized(ctx); err != nil {
		return err
	}

	creds, err := c.store.GetCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	channel, err := c.dialer.Dial(ctx, realtime.PurposeChat, creds.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to open chat: %w", err)
	}
	defer func() {
		_ = channel.Close()
	}()

	ids := identity.NewCache(c.identityLookup())

	var (
		mu       sync.Mutex
		printed  int
		pipeline *chat.Pipeline
	)
	onChange := func() {
		mu.Lock()
		defer mu.Unlock()
		entries := pipeline.Entries()
		for ; printed < len(entries); printed++ {
			e := entries[printed]
			c.io.Printf("%s: %s\n", e.DisplayName, e.Body)
		}
	}
	pipeline = chat.NewPipeline(ids, onChange)

	done := make(chan struct{})
	go func() {
		pipeline.Run(ctx, channel.Events())
		close(done)
	}()

	c.io.Println("Connected to chat. Type a message and press enter; /quit to leave.")

	for {
		select {
		case <-done:
			c.io.Println("Connection closed.")
			return nil
		default:
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			// stdin closed; leaving the view releases the socket
			return nil
		}
		if line == "/quit" {
			return nil
		}
		if line == "" {
			continue
		}

		// Fire and forget: the input line is gone regardless of delivery,
		// and the message shows up only once the server echoes it back.
		if err := channel.Send(line, creds.UserID); err != nil {
			c.io.Printf("send failed: %v\n", err)
		}
	}
}

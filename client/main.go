package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	contador "github.com/achyuta116/contador/lib"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/cobra"
)

func main() {
	var broker, topic string

	cmd := &cobra.Command{
		Use:          "client",
		Short:        "Print events published by the contador server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if broker == "" {
				broker = os.Getenv("BROKER_IP")
			}
			if broker == "" {
				return errors.New("--broker or BROKER_IP is required")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			reader := kafka.NewReader(kafka.ReaderConfig{
				Brokers: []string{broker},
				Topic:   topic,
			})
			defer reader.Close()

			for {
				m, err := reader.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						fmt.Println("Exited gracefully")
						return nil
					}
					return fmt.Errorf("read %s: %w", topic, err)
				}

				var event contador.Event
				if err := json.Unmarshal(m.Value, &event); err != nil {
					fmt.Fprintf(os.Stderr, "skip malformed event at offset %d: %v\n", m.Offset, err)
					continue
				}
				printEvent(event)
			}
		},
	}
	cmd.Flags().StringVar(&broker, "broker", "", "kafka broker address (default $BROKER_IP)")
	cmd.Flags().StringVar(&topic, "topic", contador.DefaultTopic, "topic to tail")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func printEvent(e contador.Event) {
	switch e.Type {
	case contador.EventIncrement:
		fmt.Printf("%s %s count=%d\n", e.Time.Format("15:04:05"), e.Type, e.Count)
	case contador.EventFileRead:
		fmt.Printf("%s %s bytes=%d\n", e.Time.Format("15:04:05"), e.Type, e.Bytes)
	case contador.EventCalculation:
		fmt.Printf("%s %s %s=%g\n", e.Time.Format("15:04:05"), e.Type, e.Operation, e.Result)
	default:
		fmt.Printf("%s %s\n", e.Time.Format("15:04:05"), e.Type)
	}
}

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/SKxrda3/sb-voice/internal/cart"
	"github.com/SKxrda3/sb-voice/internal/catalog"
	"github.com/SKxrda3/sb-voice/internal/db"
	"github.com/SKxrda3/sb-voice/internal/dialog"
	"github.com/SKxrda3/sb-voice/internal/resolve"
	"github.com/SKxrda3/sb-voice/internal/speech"

	"github.com/joho/godotenv"
)

// The script driver blocks on the transducer between turns instead of
// suspending at an HTTP boundary; the automaton underneath is the same.
const maxConfirmRetries = 3

func main() {
	userID := flag.Int("user-id", 0, "customer id")
	storeID := flag.Int("store-id", 0, "store id")
	flag.Parse()

	if *userID == 0 || *storeID == 0 {
		log.Fatal("both --user-id and --store-id are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("Note: No .env file found, using environment variables")
	}
	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	catalogRepo := catalog.NewPostgresRepository(pgDB)
	committer := cart.NewPostgresCommitter(pgDB)
	engine := dialog.NewEngine(catalogRepo, resolve.NewResolver(nil), committer)

	// Interactive policy: lower cutoff, wider ambiguity band; the user is
	// right there to disambiguate.
	engine.Threshold = resolve.DefaultThreshold
	engine.Band = resolve.DefaultBand

	transducer := speech.NewConsoleTransducer()

	ctx := context.Background()

	state, greeting, err := engine.Start(ctx, *userID, *storeID)
	if err != nil {
		transducer.Speak(greeting.Message)
		log.Fatalf("could not start conversation: %v", err)
	}
	transducer.Speak(greeting.Message)

	for {
		input, err := transducer.Listen()
		if err != nil {
			// No usable input; the engine answers with the menu.
			transducer.Speak("Sorry, I couldn't understand that.")
			input = ""
		}

		reply, err := engine.Step(ctx, state, input)
		if err != nil {
			transducer.Speak(reply.Message)
			log.Printf("turn failed: %v", err)
			continue
		}

		transducer.Speak(reply.Message)

		switch state.Status {
		case dialog.StatusConfirmed, dialog.StatusCancelled, dialog.StatusDeferred:
			return
		case dialog.StatusPending:
			// Bounded retries at confirmation, then an explicit choice.
			if state.Retries >= maxConfirmRetries {
				transducer.Speak("Fallback (type yes / no / maybe):")
				choice, _ := transducer.Listen()
				final, err := engine.Step(ctx, state, choice)
				if err != nil {
					transducer.Speak(final.Message)
					log.Fatalf("commit failed: %v", err)
				}
				if state.Status == dialog.StatusPending {
					// Still unreadable; treat the order as cancelled.
					final, _ = engine.Step(ctx, state, "no")
				}
				transducer.Speak(final.Message)
				return
			}
		}
	}
}

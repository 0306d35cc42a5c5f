package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/statementlab/internal/flashcards"
	"github.com/cleared-dev/statementlab/internal/model"
)

func newFlashcardsCommand(st *state) *cobra.Command {
	var shuffle bool
	var seed uint64

	cmd := &cobra.Command{
		Use:   "flashcards [statement|all]",
		Short: "Flip through account cards: enter=next, f=flip, s=shuffle, q=quit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts := st.catalog.All()
			if len(args) > 0 && args[0] != "all" {
				stmt, err := model.ParseStatementType(args[0])
				if err != nil {
					return err
				}
				accounts = st.catalog.ForStatement(stmt)
			}

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			rng := rand.New(rand.NewPCG(seed, seed>>1))

			deck := flashcards.NewDeck(accounts)
			if shuffle {
				deck.Shuffle(rng)
			}
			return runFlashcards(cmd.InOrStdin(), cmd.OutOrStdout(), deck, rng)
		},
	}

	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the deck before starting")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed (default: time based)")

	return cmd
}

func runFlashcards(in io.Reader, out io.Writer, deck *flashcards.Deck, rng *rand.Rand) error {
	if deck.Len() == 0 {
		_, err := fmt.Fprintln(out, "No cards")
		return err
	}

	printCard(out, deck)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		switch strings.ToLower(strings.TrimSpace(sc.Text())) {
		case "", "n", "next":
			deck.Next()
		case "f", "flip":
			deck.Flip()
		case "s", "shuffle":
			deck.Shuffle(rng)
		case "q", "quit":
			return nil
		default:
			fmt.Fprintln(out, "enter=next, f=flip, s=shuffle, q=quit")
			continue
		}
		printCard(out, deck)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func printCard(out io.Writer, deck *flashcards.Deck) {
	card, _ := deck.Current()
	fmt.Fprintf(out, "Card %d / %d (%s%%)\n", deck.Index()+1, deck.Len(), deck.Progress().StringFixed(0))
	fmt.Fprintf(out, "  %s\n", card.Title)
	if deck.Flipped() {
		fmt.Fprintf(out, "  Classification:      %s\n", card.Classification)
		fmt.Fprintf(out, "  Financial Statement: %s\n", card.Statement)
		fmt.Fprintf(out, "  Normal Balance:      %s\n", card.NormalBalance)
	}
}

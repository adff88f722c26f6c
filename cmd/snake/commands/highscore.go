package commands

import (
	"context"
	"fmt"

	"github.com/battlesnakeio/snake/session"
	"github.com/spf13/cobra"
)

var resetHighScore bool

func init() {
	highScoreCmd.Flags().BoolVar(&resetHighScore, "reset", false, "set the stored high score back to zero")
}

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "prints the stored high score",
	RunE: func(c *cobra.Command, args []string) error {
		hs, err := openStore(cfg.Backend, cfg.BackendArgs, cfg.HighScoreKey)
		if err != nil {
			return err
		}
		defer closeStore(hs)

		ctx, cancel := context.WithTimeout(context.Background(), session.StoreTimeout)
		defer cancel()

		if resetHighScore {
			if err := hs.SetHighScore(ctx, 0); err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), "high score reset")
			return nil
		}

		score, err := hs.GetHighScore(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), score)
		return nil
	},
}

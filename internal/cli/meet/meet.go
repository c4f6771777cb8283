package meet

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/logger"
	"github.com/julianstephens/rendezvous/internal/models"
	"github.com/julianstephens/rendezvous/internal/recommender"
)

type MeetCmd struct {
	Indices []int  `arg:"" help:"Indices of the people meeting."`
	Purpose string `short:"p" enum:"meet,study,eat" default:"meet" help:"What the meetup is for (meet, study, eat)."`
	Limit   int    `short:"l" default:"20" help:"Maximum number of recommendations (1-20)."`
	DryRun  bool   `help:"Show recommendations without replacing the saved list."`
}

func (c *MeetCmd) Run(ctx *cli.Context) error {
	if len(c.Indices) == 0 {
		return errors.New("at least one person index is required")
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	purpose, err := models.ParsePurpose(c.Purpose)
	if err != nil {
		return err
	}

	people, err := ctx.Roster()
	if err != nil {
		return err
	}
	bounds, err := ctx.Bounds()
	if err != nil {
		return err
	}
	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}

	indices := cli.ToIndices(c.Indices)
	var participants, unknown []models.ContactIndex
	seen := make(map[models.ContactIndex]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if _, ok := people.Resolve(idx); ok {
			participants = append(participants, idx)
		} else {
			unknown = append(unknown, idx)
		}
	}
	if len(unknown) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: ignoring unknown people: %s\n", cli.FormatIndices(unknown))
	}

	r := recommender.New(people, bounds)
	r.ResultLimit = min(c.Limit, constants.RecommendationLimit)
	recs, err := r.Recommend(participants, catalog.ForPurpose(purpose))
	if err != nil {
		return fmt.Errorf("failed to compute recommendations: %w", err)
	}

	if c.DryRun {
		for i := range recs {
			recs[i] = recs[i].WithIndex(models.ContactIndex(i + 1))
		}
	} else {
		recs = ctx.Indexer.IndexRecommendations(recs)
		if err := ctx.Store.ReplaceRecommendations(recs); err != nil {
			return fmt.Errorf("failed to save recommendations: %w", err)
		}
		if err := ctx.Store.SaveParticipants(participants); err != nil {
			return fmt.Errorf("failed to save participants: %w", err)
		}
	}
	logger.Info("Computed recommendations", "participants", len(participants), "purpose", c.Purpose, "count", len(recs))

	if len(recs) == 0 {
		fmt.Println("No shared free time at a suitable location. Try another purpose or add visits.")
		return nil
	}
	fmt.Printf("Recommendations for %s (%s):\n", cli.FormatIndices(participants), c.Purpose)
	printRecommendations(recs)
	if !c.DryRun {
		fmt.Println("\nSave one with 'rendezvous meetup save <index>'.")
	}
	return nil
}

type RecommendationListCmd struct{}

func (c *RecommendationListCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Store.GetRecommendations()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No recommendations. Run 'rendezvous meet <indices...>' first.")
		return nil
	}
	participants, err := ctx.Store.GetParticipants()
	if err != nil {
		return err
	}
	fmt.Printf("Recommendations for %s:\n", cli.FormatIndices(participants))
	printRecommendations(recs)
	return nil
}

func printRecommendations(recs []models.Recommendation) {
	for _, r := range recs {
		fmt.Printf("  %-5s %-9s %s-%s  %-28s %s\n",
			r.Index, r.Block.Day, r.Block.Start(), r.Block.End(), r.Location.Name, r.Location.Region)
	}
}

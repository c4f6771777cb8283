package meet

import (
	"fmt"
	"time"

	"github.com/julianstephens/rendezvous/internal/cli"
	"github.com/julianstephens/rendezvous/internal/constants"
	"github.com/julianstephens/rendezvous/internal/index"
	"github.com/julianstephens/rendezvous/internal/models"
)

type MeetupSaveCmd struct {
	Recommendation int `arg:"" help:"Index of the recommendation to keep."`
}

func (c *MeetupSaveCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Store.GetRecommendations()
	if err != nil {
		return err
	}
	var chosen *models.Recommendation
	for i := range recs {
		if recs[i].Index == models.ContactIndex(c.Recommendation) {
			chosen = &recs[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("no recommendation #%d (see 'rendezvous recommendation list')", c.Recommendation)
	}

	participants, err := ctx.Store.GetParticipants()
	if err != nil {
		return err
	}

	m := models.MeetUp{
		Index:        ctx.Indexer.Assign(index.MeetUps),
		Location:     chosen.Location,
		Block:        chosen.Block,
		Participants: participants,
		CreatedAt:    time.Now(),
	}
	if err := ctx.Store.AddMeetUp(m); err != nil {
		ctx.Indexer.Release(index.MeetUps, m.Index)
		return fmt.Errorf("failed to save meetup: %w", err)
	}
	fmt.Printf("Saved meetup %s: %s on %s with %s\n", m.Index, m.Location.Name, m.Block, cli.FormatIndices(m.Participants))
	return nil
}

type MeetupListCmd struct{}

func (c *MeetupListCmd) Run(ctx *cli.Context) error {
	meetups, err := ctx.Store.GetMeetUps()
	if err != nil {
		return err
	}
	if len(meetups) == 0 {
		fmt.Println("No meetups saved.")
		return nil
	}
	for _, m := range meetups {
		fmt.Printf("  %-5s %-9s %s-%s  %-28s with %s  (saved %s)\n",
			m.Index, m.Block.Day, m.Block.Start(), m.Block.End(), m.Location.Name,
			cli.FormatIndices(m.Participants), m.CreatedAt.Format(constants.DateFormat))
	}
	return nil
}

type MeetupDeleteCmd struct {
	Index int `arg:"" help:"Meetup index."`
}

func (c *MeetupDeleteCmd) Run(ctx *cli.Context) error {
	idx := models.ContactIndex(c.Index)
	if err := ctx.Store.DeleteMeetUp(idx); err != nil {
		return fmt.Errorf("failed to delete meetup: %w", err)
	}
	ctx.Indexer.Release(index.MeetUps, idx)
	fmt.Printf("Deleted meetup %s\n", idx)
	return nil
}

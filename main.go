package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

var (
	players  = flag.Int("players", 2, "players per match")
	matches  = flag.Int("matches", 10, "matches to simulate")
	strategy = flag.String("strategy", player.StrategyGood, "bot strategy: naive or good")
	maxTurns = flag.Int("max-turns", 5000, "turns before a match is abandoned")
	painted  = flag.Bool("color", false, "paint cards in the narration")
	verbose  = flag.Bool("verbose", false, "narrate every match")
)

var errAborted = errors.New("simulation aborted")

type outcome struct {
	index     int
	match     *service.Match
	narration string
	err       error
}

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()
	color.SetPainting(*painted)
	if *matches < 1 {
		log.Errorf("-matches must be positive, got %d\n", *matches)
		return
	}

	outcomes := make([]outcome, *matches)
	wg := sync.WaitGroup{}
	for i := 0; i < *matches; i++ {
		i := i
		outcomes[i] = outcome{index: i, err: errAborted}
		wg.Add(1)
		async.Async(func() {
			defer wg.Done()
			outcomes[i] = simulate(i)
		})
	}
	wg.Wait()

	finished, turns := 0, 0
	wins := map[string]int{}
	for _, o := range outcomes {
		if o.narration != "" {
			_, _ = fmt.Fprint(color.Stdout, o.narration)
		}
		if o.err != nil {
			log.Errorf("match %d: %v\n", o.index+1, o.err)
			continue
		}
		standings := o.match.Standings()
		lines := make([]string, 0, len(standings))
		for _, standing := range standings {
			lines = append(lines, standing.String())
		}
		log.Infof("match %d (%s) after %d turns:\n%s", o.index+1, o.match.ID, o.match.Turns(), msg.Sprintlns(lines))
		finished++
		turns += o.match.Turns()
		wins[standings[0].Name]++
		service.RemoveMatch(o.match.ID)
	}
	if finished > 0 {
		log.Infof("%d of %d matches finished, %.1f turns on average\n", finished, *matches, float64(turns)/float64(finished))
	}
	for name, amount := range wins {
		log.Infof("%s won %d match(es)\n", name, amount)
	}
}

func simulate(index int) outcome {
	bots, err := player.CreateBots(*players, *strategy)
	if err != nil {
		return outcome{index: index, err: err}
	}

	var narration bytes.Buffer
	options := []service.Option{service.WithTurnTimeout(0)}
	if *verbose {
		_, _ = fmt.Fprintf(&narration, "Match %d\n", index+1)
		options = append(options, service.WithGameOptions(game.WithListener(msg.NewNarrator(&narration, *painted))))
	}
	m, err := service.CreateMatch(player.Names(bots), options...)
	if err != nil {
		return outcome{index: index, err: err}
	}

	byID := make(map[int64]player.Bot, len(bots))
	for _, standing := range m.Standings() {
		for _, bot := range bots {
			if bot.Name() == standing.Name {
				byID[standing.PlayerID] = bot
			}
		}
	}

	o := outcome{index: index, match: m}
	for turn := 0; !m.Finished(); turn++ {
		if turn >= *maxTurns {
			o.err = fmt.Errorf("abandoned after %d turns", turn)
			break
		}
		current := m.CurrentTurnPlayerID()
		state, err := m.State(current)
		if err != nil {
			o.err = err
			break
		}
		result, _, err := m.Play(current, byID[current].Decide(state))
		if err != nil {
			if errors.Is(err, consts.ErrorsDeckExhausted) {
				err = fmt.Errorf("stalled after %d turns: %w", turn, err)
			}
			o.err = err
			break
		}
		if *verbose {
			narration.WriteString(msg.Message.TurnResult(state.PlayerNames[current], result, state.PlayerNames))
		}
	}
	if o.err != nil {
		service.RemoveMatch(m.ID)
	}
	o.narration = narration.String()
	return o
}

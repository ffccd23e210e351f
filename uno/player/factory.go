package player

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ratel-online/uno/consts"
)

const (
	StrategyNaive = "naive"
	StrategyGood  = "good"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

func New(strategy string, name string) (Bot, error) {
	switch strings.ToLower(strategy) {
	case StrategyNaive:
		return NewNaivePlayer(name), nil
	case StrategyGood:
		return NewGoodPlayer(name), nil
	}
	return nil, fmt.Errorf("%q: %w", strategy, consts.ErrorsUnknownStrategy)
}

// CreateBots seats amount bots of the given strategy under distinct names.
func CreateBots(amount int, strategy string) ([]Bot, error) {
	if amount < consts.MinPlayers {
		return nil, consts.ErrorsNotEnoughPlayers
	}
	if amount > len(botNames) {
		return nil, consts.ErrorsTooManyPlayers
	}
	bots := make([]Bot, 0, amount)
	for _, i := range rand.Perm(len(botNames))[:amount] {
		bot, err := New(strategy, botNames[i])
		if err != nil {
			return nil, err
		}
		bots = append(bots, bot)
	}
	return bots, nil
}

func Names(bots []Bot) []string {
	names := make([]string, 0, len(bots))
	for _, bot := range bots {
		names = append(names, bot.Name())
	}
	return names
}

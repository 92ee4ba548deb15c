package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/msg"
)

type Player struct {
	ID   int64
	Name string
}

type Seat struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Ready    bool   `json:"ready"`
	SaidUno  bool   `json:"said_uno"`
}

type LogEntry struct {
	PlayerID   int64     `json:"player_id"`
	PlayerName string    `json:"player"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

type Option func(*Game)

func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game is one UNO match. It is not safe for concurrent use; the room that
// owns it holds a lock around every call.
type Game struct {
	ID         int64
	Title      string
	CreatorID  int64
	MaxPlayers int
	Status     string
	Color      color.Color
	CreatedAt  time.Time

	turns   Cycler
	seats   []*Seat
	store   *Store
	history []LogEntry
	scores  map[int64]int
	winner  *Seat
	rng     *rand.Rand
	now     func() time.Time
}

// New creates a waiting game with the creator in the first seat.
func New(id int64, title string, creator Player, maxPlayers int, opts ...Option) (*Game, error) {
	title = strings.TrimSpace(title)
	if n := len([]rune(title)); n < consts.MinTitleLength || n > consts.MaxTitleLength {
		return nil, consts.Errorf(consts.KindValidation, "Title must be between %d and %d characters", consts.MinTitleLength, consts.MaxTitleLength)
	}
	if maxPlayers < consts.MinPlayers || maxPlayers > consts.MaxPlayers {
		return nil, consts.Errorf(consts.KindValidation, "Max players must be between %d and %d", consts.MinPlayers, consts.MaxPlayers)
	}
	g := &Game{
		ID:         id,
		Title:      title,
		CreatorID:  creator.ID,
		MaxPlayers: maxPlayers,
		Status:     consts.GameStatusWaiting,
		Color:      color.Wild,
		turns:      NewCycler(),
		scores:     map[int64]int{},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g.store = NewStore(g.rng)
	g.CreatedAt = g.now()
	g.seats = append(g.seats, &Seat{PlayerID: creator.ID, Name: creator.Name, Position: 0})
	g.log(creator.ID, msg.Action.Joined())
	return g, nil
}

func (g *Game) Store() *Store {
	return g.store
}

func (g *Game) Direction() Direction {
	return g.turns.Direction
}

func (g *Game) CurrentIndex() int {
	return g.turns.Current
}

func (g *Game) Seats() []Seat {
	seats := make([]Seat, 0, len(g.seats))
	for _, s := range g.seats {
		seats = append(seats, *s)
	}
	return seats
}

func (g *Game) Seat(playerID int64) (Seat, bool) {
	s := g.seat(playerID)
	if s == nil {
		return Seat{}, false
	}
	return *s, true
}

// CurrentSeat is the seat whose turn it is.
func (g *Game) CurrentSeat() Seat {
	if len(g.seats) == 0 {
		return Seat{}
	}
	return *g.seats[g.turns.Current]
}

func (g *Game) History() []LogEntry {
	return append([]LogEntry(nil), g.history...)
}

func (g *Game) Finished() bool {
	return g.Status == consts.GameStatusFinished
}

// Winner is the seat End declared the winner.
func (g *Game) Winner() (Seat, bool) {
	if g.winner == nil {
		return Seat{}, false
	}
	return *g.winner, true
}

// Version counts the recorded actions. Every successful mutation records
// one, so a higher version is a newer game.
func (g *Game) Version() int {
	return len(g.history)
}

// Clone deep copies the game so it can be restored after a failed
// mutation. The random source is shared.
func (g *Game) Clone() *Game {
	clone := *g
	clone.seats = make([]*Seat, 0, len(g.seats))
	for _, s := range g.seats {
		cp := *s
		clone.seats = append(clone.seats, &cp)
	}
	clone.store = g.store.Clone()
	clone.history = append([]LogEntry(nil), g.history...)
	clone.scores = make(map[int64]int, len(g.scores))
	for id, score := range g.scores {
		clone.scores[id] = score
	}
	return &clone
}

func (g *Game) Join(p Player) (Seat, error) {
	if g.Status != consts.GameStatusWaiting {
		return Seat{}, consts.ErrorsGameNotWaiting
	}
	if g.seat(p.ID) != nil {
		return Seat{}, consts.ErrorsAlreadyJoined
	}
	if len(g.seats) >= g.MaxPlayers {
		return Seat{}, consts.ErrorsGameFull
	}
	s := &Seat{PlayerID: p.ID, Name: p.Name, Position: len(g.seats)}
	g.seats = append(g.seats, s)
	g.log(p.ID, msg.Action.Joined())
	return *s, nil
}

func (g *Game) MarkReady(playerID int64) (Seat, error) {
	if g.Status != consts.GameStatusWaiting {
		return Seat{}, consts.ErrorsGameNotWaiting
	}
	s := g.seat(playerID)
	if s == nil {
		return Seat{}, consts.ErrorsNotInGame
	}
	if !s.Ready {
		s.Ready = true
		g.log(playerID, msg.Action.Ready())
	}
	return *s, nil
}

// Leave removes a player. While waiting the seat simply goes away and the
// creator role passes to the next seat. During play the hand goes back to
// the deck and the turn stays with the seat that would have played next.
func (g *Game) Leave(playerID int64) error {
	if g.Finished() {
		return consts.ErrorsGameFinished
	}
	s := g.seat(playerID)
	if s == nil {
		return consts.ErrorsNotInGame
	}
	g.log(playerID, msg.Action.Left())

	if g.Status == consts.GameStatusInProgress {
		for _, c := range g.store.HandOf(playerID) {
			if _, err := g.store.Move(c.ID, InDeck, 0); err != nil {
				return err
			}
		}
		delete(g.scores, playerID)
	}

	current := g.turns.Current
	g.seats = append(g.seats[:s.Position], g.seats[s.Position+1:]...)
	for i, other := range g.seats {
		other.Position = i
	}
	if len(g.seats) > 0 {
		switch {
		case s.Position < current:
			current--
		case s.Position == current && g.turns.Direction == CounterClockwise:
			current--
		}
		g.turns.Current = (current + len(g.seats)) % len(g.seats)
	} else {
		g.turns.Current = 0
	}
	if g.CreatorID == playerID && len(g.seats) > 0 {
		g.CreatorID = g.seats[0].PlayerID
	}
	return nil
}

// StartResult describes a freshly dealt game.
type StartResult struct {
	Opening        card.Card      `json:"opening"`
	Color          color.Color    `json:"color"`
	CardsPerPlayer int            `json:"cards_per_player"`
	Seats          []Seat         `json:"seats"`
	DeckCount      int            `json:"deck_count"`
	Scores         map[string]int `json:"scores"`
}

func (g *Game) Start(requesterID int64, cardsPerPlayer int) (*StartResult, error) {
	if g.Status != consts.GameStatusWaiting {
		return nil, consts.ErrorsGameNotWaiting
	}
	if requesterID != g.CreatorID {
		return nil, consts.ErrorsNotCreator
	}
	if len(g.seats) < consts.MinPlayers {
		return nil, consts.ErrorsNotEnoughPlayers
	}
	for _, s := range g.seats {
		if !s.Ready {
			return nil, consts.ErrorsPlayersNotReady
		}
	}
	if cardsPerPlayer < 0 {
		return nil, consts.Errorf(consts.KindValidation, "Cards per player must not be negative: %d", cardsPerPlayer)
	}
	if cardsPerPlayer == 0 {
		cardsPerPlayer = consts.DefaultCardsPerPlayer
	}

	owners := make([]int64, 0, len(g.seats))
	for i, s := range g.seats {
		s.Position = i
		owners = append(owners, s.PlayerID)
	}
	if err := g.store.BulkInsert(NewShuffledDeck(g.rng)); err != nil {
		return nil, err
	}
	if err := g.store.Deal(owners, cardsPerPlayer); err != nil {
		return nil, err
	}
	opening, err := g.store.SelectOpening()
	if err != nil {
		return nil, err
	}

	g.Status = consts.GameStatusInProgress
	g.Color = opening.Color
	g.turns = NewCycler()
	for _, s := range g.seats {
		g.initializeScore(s)
	}
	g.log(requesterID, msg.Action.Started(opening))

	return &StartResult{
		Opening:        opening,
		Color:          g.Color,
		CardsPerPlayer: cardsPerPlayer,
		Seats:          g.Seats(),
		DeckCount:      g.store.DeckCount(),
		Scores:         g.namedScores(),
	}, nil
}

// DrawResult is the outcome of drawing from the deck on one's own turn.
type DrawResult struct {
	Card       card.Card `json:"card"`
	NextPlayer Seat      `json:"next_player"`
	HandSize   int       `json:"hand_size"`
}

func (g *Game) Draw(playerID int64) (*DrawResult, error) {
	s, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	drawn, err := g.store.DrawCards(playerID, 1)
	if err != nil {
		return nil, err
	}
	g.settle(s)
	g.log(playerID, msg.Action.DrewCard())
	g.turns.Advance(1, len(g.seats))
	return &DrawResult{
		Card:       drawn[0],
		NextPlayer: g.CurrentSeat(),
		HandSize:   g.store.HandSize(playerID),
	}, nil
}

// actor checks that the game is running and that it is playerID's turn.
func (g *Game) actor(playerID int64) (*Seat, error) {
	if err := g.running(); err != nil {
		return nil, err
	}
	s := g.seat(playerID)
	if s == nil {
		return nil, consts.ErrorsNotInGame
	}
	if g.seats[g.turns.Current].PlayerID != playerID {
		return nil, consts.ErrorsNotYourTurn
	}
	return s, nil
}

func (g *Game) running() error {
	switch g.Status {
	case consts.GameStatusInProgress:
		return nil
	case consts.GameStatusFinished:
		return consts.ErrorsGameFinished
	}
	return consts.ErrorsGameNotRunning
}

func (g *Game) seat(playerID int64) *Seat {
	for _, s := range g.seats {
		if s.PlayerID == playerID {
			return s
		}
	}
	return nil
}

// settle refreshes everything derived from a hand size after it changed.
func (g *Game) settle(s *Seat) {
	size := g.store.HandSize(s.PlayerID)
	if size != consts.UnoHandSize {
		s.SaidUno = false
	}
	g.scores[s.PlayerID] = Score(size)
}

func (g *Game) log(playerID int64, action string) {
	name := ""
	if s := g.seat(playerID); s != nil {
		name = s.Name
	}
	g.history = append(g.history, LogEntry{
		PlayerID:   playerID,
		PlayerName: name,
		Action:     action,
		Timestamp:  g.now(),
	})
}

package consts

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	MinTitleLength = 3
	MaxTitleLength = 100

	DefaultCardsPerPlayer = 7
	UnoHandSize           = 1
	ChallengePenalty      = 2
	BaseScoreHandSize     = 7
	ScorePerCard          = 10

	LoginTimeout  = 3 * time.Second
	SweepInterval = 1 * time.Minute
	FinishedTTL   = 1 * time.Hour
)

const (
	GameStatusWaiting    = "waiting"
	GameStatusInProgress = "in_progress"
	GameStatusFinished   = "finished"
)

// Kind classifies an Error for callers that map errors onto responses.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAuth
	KindGameState
	KindValidation
	KindBusiness
	KindDeckExhausted
)

var kindNames = map[Kind]string{
	KindInternal:      "internal",
	KindNotFound:      "not_found",
	KindAuth:          "auth",
	KindGameState:     "game_state",
	KindValidation:    "validation",
	KindBusiness:      "business",
	KindDeckExhausted: "deck_exhausted",
}

var kindCodes = map[Kind]int{
	KindInternal:      500,
	KindNotFound:      404,
	KindAuth:          401,
	KindGameState:     409,
	KindValidation:    422,
	KindBusiness:      400,
	KindDeckExhausted: 410,
}

func (k Kind) String() string {
	return kindNames[k]
}

func (k Kind) Code() int {
	return kindCodes[k]
}

type Error struct {
	Kind Kind
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(kind Kind, msg string) Error {
	return Error{Kind: kind, Code: kind.Code(), Msg: msg}
}

func NewExitErr(kind Kind, msg string) Error {
	err := NewErr(kind, msg)
	err.Exit = true
	return err
}

// Errorf builds an Error whose message is formatted like fmt.Sprintf.
func Errorf(kind Kind, format string, args ...interface{}) Error {
	return NewErr(kind, fmt.Sprintf(format, args...))
}

// KindOf reports the Kind carried by err or anything it wraps. Errors that
// carry no Kind are internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var e Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	ErrorsAuthFail      = NewExitErr(KindAuth, "Auth fail. ")
	ErrorsTimeout       = NewExitErr(KindAuth, "Timeout. ")
	ErrorsInputInvalid  = NewErr(KindValidation, "Input invalid. ")
	ErrorsUnknownAction = NewErr(KindValidation, "Unknown action. ")

	ErrorsGameNotFound     = NewErr(KindNotFound, "Game not found")
	ErrorsPlayerNotFound   = NewErr(KindNotFound, "Player not found")
	ErrorsCardNotFound     = NewErr(KindNotFound, "Card not found")
	ErrorsDiscardEmpty     = NewErr(KindNotFound, "No card in the discard pile")
	ErrorsDeckEmpty        = NewErr(KindDeckExhausted, "No cards left in the deck")
	ErrorsNotInGame        = NewErr(KindAuth, "You are not a player in this game")
	ErrorsNotYourTurn      = NewErr(KindAuth, "It's not your turn to play")
	ErrorsCardNotInHand    = NewErr(KindAuth, "The card is not in your hand")
	ErrorsNotCreator       = NewErr(KindAuth, "Only the game creator can start the game")
	ErrorsGameNotWaiting   = NewErr(KindGameState, "Game is not in waiting status")
	ErrorsGameNotRunning   = NewErr(KindGameState, "Game is not in progress")
	ErrorsGameFinished     = NewErr(KindGameState, "Game is already finished")
	ErrorsAlreadyJoined    = NewErr(KindBusiness, "Player is already in the game")
	ErrorsGameFull         = NewErr(KindBusiness, "Game has reached maximum number of players")
	ErrorsPlayersNotReady  = NewErr(KindBusiness, "Not all players are ready")
	ErrorsNotEnoughPlayers = NewErr(KindBusiness, "Not enough players to start the game")
	ErrorsCannotReverse    = NewErr(KindBusiness, "Not enough players to reverse direction")
	ErrorsIllegalPlay      = NewErr(KindBusiness, "Card must match the current color or rank, or be wild")
	ErrorsCannotSayUno     = NewErr(KindBusiness, "You can only say UNO when you have one card left")
	ErrorsNoWinner         = NewErr(KindBusiness, "No player has 0 cards, game cannot be ended")
	ErrorsStoreNotEmpty    = NewErr(KindValidation, "Cards can only be inserted into an empty store")
	ErrorsInvalidLocation  = NewErr(KindValidation, "Card location and owner are inconsistent")
)

package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Seednode/wordguess/games/wordmatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHub(t *testing.T, cards string) *Hub {
	t.Helper()

	deck, err := parseDeck(strings.NewReader(cards))
	require.NoError(t, err)

	h := newHub("TESTGAME", wordmatch.Default(), deck)
	t.Cleanup(h.closeAll)

	return h
}

func connect(h *Hub, playerID string) *Client {
	c := &Client{send: make(chan any, 64), playerID: playerID}
	h.addClient(c)
	return c
}

func drain(c *Client) []any {
	var out []any
	for {
		select {
		case m, ok := <-c.send:
			if !ok {
				return out
			}
			out = append(out, m)
		default:
			return out
		}
	}
}

func only[T any](msgs []any) []T {
	var out []T
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func join(h *Hub, cfg *Config, c *Client, name string) {
	h.handleJoin(cfg, clientRequest{client: c, msg: ClientMessage{Type: "join", Username: name}})
}

func command(h *Hub, cfg *Config, c *Client, msg ClientMessage) {
	h.handleGiverCommand(cfg, clientRequest{client: c, msg: msg})
}

func guess(h *Hub, cfg *Config, c *Client, text string) {
	h.handleGuess(cfg, clientRequest{client: c, msg: ClientMessage{Type: "guess", Text: text}})
}

func TestFirstClientIsGiver(t *testing.T) {
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	info := only[SessionInfoMessage](drain(giver))
	require.Len(t, info, 1)
	assert.True(t, info[0].IsGiver)

	player := connect(h, "p1")
	msgs := drain(player)
	info = only[SessionInfoMessage](msgs)
	require.Len(t, info, 1)
	assert.False(t, info[0].IsGiver)
	assert.Len(t, only[RoundStateMessage](msgs), 1)
	assert.Len(t, only[ScoreboardMessage](msgs), 1)
}

func TestJoin(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	alice := connect(h, "alice-id")
	bob := connect(h, "bob-id")
	drain(giver)
	drain(alice)
	drain(bob)

	join(h, cfg, alice, "  alice ")
	boards := only[ScoreboardMessage](drain(bob))
	require.Len(t, boards, 1)
	assert.Equal(t, []PlayerScore{{Username: "alice", Score: 0}}, boards[0].Players)

	join(h, cfg, bob, "ALICE")
	collisions := only[CollisionMessage](drain(bob))
	require.Len(t, collisions, 1)
	assert.Equal(t, "username", collisions[0].Field)

	join(h, cfg, giver, "sneaky")
	errs := only[SimpleMessage](drain(giver))
	require.Len(t, errs, 1)
	assert.Equal(t, "join_error", errs[0].Type)

	join(h, cfg, alice, "alicia")
	require.Len(t, h.players, 1)
	assert.Equal(t, "alicia", h.players[0].Username)
}

func TestRoundFlow(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	alice := connect(h, "alice-id")
	join(h, cfg, alice, "alice")
	drain(giver)
	drain(alice)

	guess(h, cfg, alice, "airplane")
	errs := only[SimpleMessage](drain(alice))
	require.Len(t, errs, 1)
	assert.Equal(t, "guess_error", errs[0].Type)

	command(h, cfg, giver, ClientMessage{Type: "set_word", Word: "Airplane"})

	giverState := only[RoundStateMessage](drain(giver))
	require.NotEmpty(t, giverState)
	assert.Equal(t, "Airplane", giverState[len(giverState)-1].Word)
	assert.True(t, giverState[len(giverState)-1].Active)

	aliceState := only[RoundStateMessage](drain(alice))
	require.NotEmpty(t, aliceState)
	assert.Empty(t, aliceState[len(aliceState)-1].Word)
	assert.Equal(t, 8, aliceState[len(aliceState)-1].WordLength)

	command(h, cfg, giver, ClientMessage{Type: "clue", Text: "it flies"})
	clues := only[ClueMessage](drain(alice))
	require.Len(t, clues, 1)
	assert.Equal(t, "it flies", clues[0].Text)

	for _, clue := range []string{"Air Plane", "a big aeroplane"} {
		command(h, cfg, giver, ClientMessage{Type: "clue", Text: clue})
		rejected := only[SimpleMessage](drain(giver))
		require.Len(t, rejected, 1, clue)
		assert.Equal(t, "clue_rejected", rejected[0].Type)
		assert.Empty(t, only[ClueMessage](drain(alice)), clue)
	}
	assert.Equal(t, []string{"it flies"}, h.clues)

	guess(h, cfg, alice, "car")
	results := only[GuessResultMessage](drain(alice))
	require.Len(t, results, 1)
	assert.False(t, results[0].Correct)
	assert.True(t, h.roundActive)

	guess(h, cfg, alice, "aeroplane")
	msgs := drain(alice)

	results = only[GuessResultMessage](msgs)
	require.Len(t, results, 1)
	assert.True(t, results[0].Correct)
	assert.Equal(t, "variant", results[0].Stage)
	assert.Equal(t, "alice", results[0].Guesser)

	over := only[RoundOverMessage](msgs)
	require.Len(t, over, 1)
	assert.Equal(t, "alice", over[0].Winner)
	assert.Equal(t, "Airplane", over[0].Word)

	boards := only[ScoreboardMessage](msgs)
	require.NotEmpty(t, boards)
	assert.Equal(t, []PlayerScore{{Username: "alice", Score: 1}}, boards[len(boards)-1].Players)
	assert.False(t, h.roundActive)
}

func TestSharedSoundsAreNotGiveaways(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "tree\n")

	giver := connect(h, "giver")
	alice := connect(h, "alice-id")
	join(h, cfg, alice, "alice")

	command(h, cfg, giver, ClientMessage{Type: "set_word", Word: "tree"})
	drain(giver)
	drain(alice)

	command(h, cfg, giver, ClientMessage{Type: "clue", Text: "not a door"})
	assert.Empty(t, only[SimpleMessage](drain(giver)))
	clues := only[ClueMessage](drain(alice))
	require.Len(t, clues, 1)
	assert.Equal(t, "not a door", clues[0].Text)

	guess(h, cfg, alice, "door")
	results := only[GuessResultMessage](drain(alice))
	require.Len(t, results, 1)
	assert.False(t, results[0].Correct)
	assert.True(t, h.roundActive)
}

func TestGiverCannotGuess(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	command(h, cfg, giver, ClientMessage{Type: "set_word", Word: "airplane"})
	drain(giver)

	guess(h, cfg, giver, "airplane")
	assert.Empty(t, drain(giver))
	assert.True(t, h.roundActive)
}

func TestOnlyGiverIssuesCommands(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	connect(h, "giver")
	alice := connect(h, "alice-id")
	join(h, cfg, alice, "alice")

	command(h, cfg, alice, ClientMessage{Type: "set_word", Word: "cheat"})
	assert.False(t, h.roundActive)
	assert.Empty(t, h.word)
}

func TestSetWordRejectsEmpty(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	drain(giver)

	command(h, cfg, giver, ClientMessage{Type: "set_word", Word: " ?! "})
	errs := only[SimpleMessage](drain(giver))
	require.Len(t, errs, 1)
	assert.Equal(t, "word_error", errs[0].Type)
	assert.False(t, h.roundActive)
}

func TestNextWordCyclesDeck(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\ncolour\n")

	giver := connect(h, "giver")

	command(h, cfg, giver, ClientMessage{Type: "next_word"})
	first := h.word
	require.True(t, h.roundActive)

	command(h, cfg, giver, ClientMessage{Type: "next_word"})
	second := h.word
	assert.NotEqual(t, first, second)
	assert.ElementsMatch(t, []string{"airplane", "colour"}, []string{first, second})
	assert.Equal(t, 2, h.round)

	command(h, cfg, giver, ClientMessage{Type: "next_word"})
	assert.Contains(t, []string{"airplane", "colour"}, h.word)
	assert.Equal(t, 3, h.round)

	over := only[RoundOverMessage](drain(giver))
	require.Len(t, over, 2)
	assert.Empty(t, over[0].Winner)
}

func TestEndRound(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	command(h, cfg, giver, ClientMessage{Type: "set_word", Word: "rainbow"})
	drain(giver)

	command(h, cfg, giver, ClientMessage{Type: "end_round"})
	over := only[RoundOverMessage](drain(giver))
	require.Len(t, over, 1)
	assert.Equal(t, "rainbow", over[0].Word)
	assert.Empty(t, over[0].Winner)

	command(h, cfg, giver, ClientMessage{Type: "end_round"})
	assert.Empty(t, only[RoundOverMessage](drain(giver)))
}

func TestLockLobby(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	alice := connect(h, "alice-id")
	join(h, cfg, alice, "alice")

	locked := true
	command(h, cfg, giver, ClientMessage{Type: "lock_lobby", Lock: &locked})

	states := only[LobbyStateMessage](drain(alice))
	require.Len(t, states, 1)
	assert.True(t, states[0].Locked)

	bob := connect(h, "bob-id")
	drain(bob)
	join(h, cfg, bob, "bob")
	errs := only[SimpleMessage](drain(bob))
	require.Len(t, errs, 1)
	assert.Equal(t, "lobby_locked", errs[0].Type)

	// Existing players may still rename.
	join(h, cfg, alice, "alicia")
	assert.Equal(t, "alicia", h.players[0].Username)
}

func TestKick(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	giver := connect(h, "giver")
	alice := connect(h, "alice-id")
	bob := connect(h, "bob-id")
	join(h, cfg, alice, "alice")
	join(h, cfg, bob, "bob")
	drain(bob)

	command(h, cfg, giver, ClientMessage{Type: "kick", TargetUsername: "ALICE"})

	kicked := only[SimpleMessage](drain(alice))
	require.Len(t, kicked, 1)
	assert.Equal(t, "kicked", kicked[0].Type)
	assert.NotContains(t, h.clients, alice)

	boards := only[ScoreboardMessage](drain(bob))
	require.Len(t, boards, 1)
	assert.Equal(t, []PlayerScore{{Username: "bob", Score: 0}}, boards[0].Players)
}

func TestRemoveIfDisconnected(t *testing.T) {
	cfg := &Config{}
	h := testHub(t, "airplane\n")

	connect(h, "giver")
	alice := connect(h, "alice-id")
	join(h, cfg, alice, "alice")

	h.removeIfDisconnected("alice-id")
	assert.Len(t, h.players, 1)

	h.mu.Lock()
	delete(h.clients, alice)
	h.mu.Unlock()

	h.removeIfDisconnected("alice-id")
	assert.Empty(t, h.players)
}

func TestScoreboardOrder(t *testing.T) {
	h := testHub(t, "airplane\n")
	h.players = []Player{
		{PlayerID: "a", Username: "a", Score: 1},
		{PlayerID: "b", Username: "b", Score: 3},
		{PlayerID: "c", Username: "c", Score: 1},
	}

	assert.Equal(t, []PlayerScore{
		{Username: "b", Score: 3},
		{Username: "a", Score: 1},
		{Username: "c", Score: 1},
	}, h.scoreboardLocked().Players)
}

func TestGameManager(t *testing.T) {
	cfg := &Config{}
	deck := embeddedDeck()
	gm := newGameManager(context.Background(), 0, wordmatch.Default(), deck)

	id := gm.newGameID()
	assert.Len(t, id, 8)
	for _, r := range id {
		assert.True(t, strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", r))
	}

	hub := gm.getHub(cfg, id)
	assert.Same(t, hub, gm.getHub(cfg, id))

	assert.Zero(t, gm.reap(time.Now().Add(-time.Hour)))
	assert.Equal(t, 1, gm.reap(time.Now().Add(time.Hour)))

	select {
	case <-hub.done:
	case <-time.After(time.Second):
		t.Fatal("reaped hub was not stopped")
	}

	assert.NotSame(t, hub, gm.getHub(cfg, id))

	gm.mu.Lock()
	for _, h := range gm.hubs {
		h.closeAll()
	}
	gm.mu.Unlock()
}

// Wordguess
//
// One player, the clue giver, sees a secret word and types clues. Everyone
// else races to type the word. A guess counts when the evaluator in
// games/wordmatch accepts it, so "Air-Plane", "aeroplane" and "airplan" all
// win a round whose word is "airplane".
//
// Features:
// - WebSockets per game ID: /wordguess/:gameid and /wordguess/:gameid/ws
// - First connection to a game becomes the clue giver
// - Clue giver picks the word (set_word) or draws a card (next_word)
// - Clues that give the word away are rejected before anyone sees them
// - First accepted guess wins the round and scores a point
// - Clue giver can end a round, lock the lobby and kick players
// - Players identified by cookie (playerID), usernames unique per game
// - Games auto-reaped after configurable idle timeout
// - In-browser QR button to share the current session, backed by go-qrcode

package main

import (
	"context"
	"crypto/rand"
	_ "embed"
	"encoding/hex"
	"log"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Seednode/wordguess/games/wordmatch"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// Player holds the data we store server-side
type Player struct {
	PlayerID string
	Username string
	Score    int
}

// Messages coming from clients
type ClientMessage struct {
	Type           string `json:"type"`                      // "join", "set_word", "next_word", "clue", "end_round", "lock_lobby", "kick", "guess"
	Username       string `json:"username,omitempty"`        // join
	Word           string `json:"word,omitempty"`            // set_word
	Text           string `json:"text,omitempty"`            // clue / guess
	Lock           *bool  `json:"lock,omitempty"`            // lock_lobby
	TargetUsername string `json:"target_username,omitempty"` // kick
}

// Sent to a single client when the username is taken
type CollisionMessage struct {
	Type    string `json:"type"`    // "collision"
	Field   string `json:"field"`   // "username"
	Message string `json:"message"` // user-facing text
}

// SimpleMessage is for generic notifications ("kicked", "lobby_locked", etc.)
type SimpleMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// LobbyStateMessage informs clients about lock/unlock changes.
type LobbyStateMessage struct {
	Type   string `json:"type"` // "lobby_state"
	Locked bool   `json:"locked"`
}

// SessionInfoMessage is sent immediately on connect so the client knows
// whether the lobby is locked and what role this cookie has.
type SessionInfoMessage struct {
	Type        string `json:"type"`               // "session_info"
	LobbyLocked bool   `json:"lobby_locked"`       // current lobby lock state
	IsExisting  bool   `json:"is_existing"`        // true if this cookie already has a player
	IsGiver     bool   `json:"is_giver"`           // true if this cookie is the clue giver
	Username    string `json:"username,omitempty"` // known username for this cookie, if any
}

// RoundStateMessage describes the current round. Word is only filled in
// for the clue giver.
type RoundStateMessage struct {
	Type       string   `json:"type"` // "round_state"
	Round      int      `json:"round"`
	Active     bool     `json:"active"`
	Word       string   `json:"word,omitempty"`
	WordLength int      `json:"word_length,omitempty"` // normalized letters in the word
	Clues      []string `json:"clues"`
}

// ClueMessage broadcasts a new clue.
type ClueMessage struct {
	Type string `json:"type"` // "clue"
	Text string `json:"text"`
}

// GuessResultMessage informs everyone about a guess outcome.
type GuessResultMessage struct {
	Type    string `json:"type"`            // "guess_result"
	Correct bool   `json:"correct"`         // true if guess was accepted
	Guesser string `json:"guesser"`         // username of guesser
	Guess   string `json:"guess"`           // text as typed
	Stage   string `json:"stage,omitempty"` // which check accepted it
}

// RoundOverMessage reveals the word. Winner is empty when the clue giver
// ended the round.
type RoundOverMessage struct {
	Type   string `json:"type"` // "round_over"
	Round  int    `json:"round"`
	Word   string `json:"word"`
	Winner string `json:"winner,omitempty"`
}

type PlayerScore struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// ScoreboardMessage lists every player, highest score first.
type ScoreboardMessage struct {
	Type    string        `json:"type"` // "scoreboard"
	Players []PlayerScore `json:"players"`
}

type Client struct {
	conn     *websocket.Conn
	send     chan any
	playerID string
}

type clientRequest struct {
	client *Client
	msg    ClientMessage
}

type Hub struct {
	id      string
	clients map[*Client]bool
	players []Player

	register chan *Client
	unreg    chan *Client
	joins    chan clientRequest
	mods     chan clientRequest
	guesses  chan clientRequest
	done     chan struct{}
	stopOnce sync.Once

	mu sync.RWMutex

	evaluator *wordmatch.Evaluator
	deck      *Deck

	createdAt     time.Time
	lastActive    time.Time
	lobbyLocked   bool
	giverPlayerID string // cookie/playerID of the clue giver (never in players)

	round       int
	roundActive bool
	word        string
	clues       []string
	used        map[string]bool // normalized words already played
}

func newHub(gameID string, evaluator *wordmatch.Evaluator, deck *Deck) *Hub {
	now := time.Now()
	return &Hub{
		id:         gameID,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unreg:      make(chan *Client),
		joins:      make(chan clientRequest),
		mods:       make(chan clientRequest),
		guesses:    make(chan clientRequest),
		done:       make(chan struct{}),
		evaluator:  evaluator,
		deck:       deck,
		createdAt:  now,
		lastActive: now,
		used:       make(map[string]bool),
	}
}

func (h *Hub) run(cfg *Config) {
	for {
		select {
		case c := <-h.register:
			h.addClient(c)

		case c := <-h.unreg:
			h.mu.Lock()
			h.lastActive = time.Now()

			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			playerID := c.playerID
			isGiver := playerID == h.giverPlayerID
			h.mu.Unlock()

			// The clue giver leaving does not erase players.
			if playerID != "" && !isGiver {
				go h.scheduleRemoval(playerID, cfg.playerTimeout)
			}

		case jr := <-h.joins:
			h.handleJoin(cfg, jr)

		case cmd := <-h.mods:
			h.handleGiverCommand(cfg, cmd)

		case gr := <-h.guesses:
			h.handleGuess(cfg, gr)

		case <-h.done:
			return
		}
	}
}

// sendLocked queues msg for c, dropping the client if its buffer is full.
func (h *Hub) sendLocked(c *Client, msg any) {
	if _, ok := h.clients[c]; !ok {
		return
	}

	select {
	case c.send <- msg:
	default:
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) broadcastLocked(msg any) {
	for client := range h.clients {
		h.sendLocked(client, msg)
	}
}

func (h *Hub) addClient(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// First connection becomes the clue giver
	if h.giverPlayerID == "" {
		h.giverPlayerID = c.playerID
	}

	isExisting := false
	existingName := ""
	if p := h.playerLocked(c.playerID); p != nil {
		isExisting = true
		existingName = p.Username
	}

	h.clients[c] = true

	h.sendLocked(c, SessionInfoMessage{
		Type:        "session_info",
		LobbyLocked: h.lobbyLocked,
		IsExisting:  isExisting,
		IsGiver:     c.playerID == h.giverPlayerID,
		Username:    existingName,
	})
	h.sendLocked(c, h.roundStateLocked(c))
	h.sendLocked(c, h.scoreboardLocked())
}

func (h *Hub) playerLocked(playerID string) *Player {
	for i := range h.players {
		if h.players[i].PlayerID == playerID {
			return &h.players[i]
		}
	}
	return nil
}

func (h *Hub) roundStateLocked(c *Client) RoundStateMessage {
	msg := RoundStateMessage{
		Type:   "round_state",
		Round:  h.round,
		Active: h.roundActive,
		Clues:  append([]string{}, h.clues...),
	}

	if h.roundActive {
		msg.WordLength = len([]rune(wordmatch.Normalize(h.word)))
		if c.playerID == h.giverPlayerID {
			msg.Word = h.word
		}
	}

	return msg
}

func (h *Hub) broadcastRoundStateLocked() {
	for client := range h.clients {
		h.sendLocked(client, h.roundStateLocked(client))
	}
}

func (h *Hub) scoreboardLocked() ScoreboardMessage {
	players := make([]PlayerScore, 0, len(h.players))
	for _, p := range h.players {
		players = append(players, PlayerScore{Username: p.Username, Score: p.Score})
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})

	return ScoreboardMessage{
		Type:    "scoreboard",
		Players: players,
	}
}

// scheduleRemoval waits for d, and if no client with this playerID
// is currently connected, removes that player's entry and broadcasts
// the updated scoreboard.
func (h *Hub) scheduleRemoval(playerID string, d time.Duration) {
	select {
	case <-time.After(d):
	case <-h.done:
		return
	}

	h.removeIfDisconnected(playerID)
}

func (h *Hub) removeIfDisconnected(playerID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		if client.playerID == playerID {
			return
		}
	}

	if !h.removePlayerLocked(func(p Player) bool { return p.PlayerID == playerID }) {
		return
	}

	h.lastActive = time.Now()

	h.broadcastLocked(h.scoreboardLocked())
}

// removePlayerLocked drops every player matching drop and reports whether
// any were removed.
func (h *Hub) removePlayerLocked(drop func(Player) bool) bool {
	dst := h.players[:0]
	changed := false

	for _, p := range h.players {
		if drop(p) {
			changed = true
			continue
		}
		dst = append(dst, p)
	}
	h.players = dst

	return changed
}

// handleJoin processes "join" messages.
func (h *Hub) handleJoin(cfg *Config, jr clientRequest) {
	c := jr.client
	username := strings.TrimSpace(jr.msg.Username)

	if username == "" || c.playerID == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	if c.playerID == h.giverPlayerID {
		h.sendLocked(c, SimpleMessage{
			Type:    "join_error",
			Message: "The clue giver cannot guess.",
		})
		return
	}

	existing := h.playerLocked(c.playerID)

	if h.lobbyLocked && existing == nil {
		h.sendLocked(c, SimpleMessage{
			Type:    "lobby_locked",
			Message: "The lobby is locked; no new players may join.",
		})
		return
	}

	for _, p := range h.players {
		if p.PlayerID != c.playerID && strings.EqualFold(p.Username, username) {
			h.sendLocked(c, CollisionMessage{
				Type:    "collision",
				Field:   "username",
				Message: "That username is already taken. Please choose a different username.",
			})
			return
		}
	}

	if existing != nil {
		existing.Username = username
	} else {
		h.players = append(h.players, Player{
			PlayerID: c.playerID,
			Username: username,
		})
		logf(cfg, "GAMES: Player %q joined %s", username, h.id)
	}

	h.broadcastLocked(h.scoreboardLocked())
}

// startRoundLocked begins a new round with word as the secret.
func (h *Hub) startRoundLocked(cfg *Config, word string) {
	h.round++
	h.roundActive = true
	h.word = word
	h.clues = nil
	h.used[wordmatch.Normalize(word)] = true

	logf(cfg, "GAMES: Round %d started in %s", h.round, h.id)

	h.broadcastRoundStateLocked()
}

// endRoundLocked reveals the word, crediting winner if non-nil.
func (h *Hub) endRoundLocked(cfg *Config, winner *Player) {
	if !h.roundActive {
		return
	}

	h.roundActive = false

	msg := RoundOverMessage{
		Type:  "round_over",
		Round: h.round,
		Word:  h.word,
	}

	if winner != nil {
		winner.Score++
		msg.Winner = winner.Username
		logf(cfg, "GAMES: %q won round %d in %s", winner.Username, h.round, h.id)
	} else {
		logf(cfg, "GAMES: Round %d ended without a winner in %s", h.round, h.id)
	}

	h.broadcastLocked(msg)
	h.broadcastRoundStateLocked()
	h.broadcastLocked(h.scoreboardLocked())
}

// givesAway reports whether a clue contains the secret word, as a whole or
// in any single token.
func (h *Hub) givesAway(clue string) bool {
	if h.evaluator.IsMatchingGuess(clue, h.word) {
		return true
	}

	for _, token := range strings.Fields(clue) {
		if h.evaluator.IsMatchingGuess(token, h.word) {
			return true
		}
	}

	return false
}

// handleGuess processes a player's guess during a round.
func (h *Hub) handleGuess(cfg *Config, gr clientRequest) {
	c := gr.client
	text := strings.TrimSpace(gr.msg.Text)

	if c.playerID == "" || text == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	guesser := h.playerLocked(c.playerID)
	if guesser == nil {
		return
	}

	if !h.roundActive {
		h.sendLocked(c, SimpleMessage{
			Type:    "guess_error",
			Message: "There is no round in progress.",
		})
		return
	}

	d := h.evaluator.Evaluate(text, h.word)

	result := GuessResultMessage{
		Type:    "guess_result",
		Correct: d.Match,
		Guesser: guesser.Username,
		Guess:   text,
	}
	if d.Match {
		result.Stage = d.Stage.String()
	}

	h.broadcastLocked(result)

	if d.Match {
		h.endRoundLocked(cfg, guesser)
	}
}

// handleGiverCommand processes clue giver commands.
func (h *Hub) handleGiverCommand(cfg *Config, cmd clientRequest) {
	c := cmd.client
	msg := cmd.msg

	h.mu.Lock()
	defer h.mu.Unlock()

	h.lastActive = time.Now()

	// Only the clue giver may issue these commands
	if h.giverPlayerID == "" || c.playerID != h.giverPlayerID {
		return
	}

	switch msg.Type {
	case "set_word":
		word := strings.TrimSpace(msg.Word)
		if wordmatch.Normalize(word) == "" {
			h.sendLocked(c, SimpleMessage{
				Type:    "word_error",
				Message: "The word must contain at least one letter or digit.",
			})
			return
		}

		h.endRoundLocked(cfg, nil)
		h.startRoundLocked(cfg, word)

	case "next_word":
		word, ok := h.deck.Draw(h.used)
		if !ok {
			clear(h.used)
			word, ok = h.deck.Draw(h.used)
		}
		if !ok {
			h.sendLocked(c, SimpleMessage{
				Type:    "word_error",
				Message: "There are no cards to draw.",
			})
			return
		}

		h.endRoundLocked(cfg, nil)
		h.startRoundLocked(cfg, word)

	case "clue":
		text := strings.TrimSpace(msg.Text)
		if !h.roundActive || text == "" {
			return
		}

		if h.givesAway(text) {
			h.sendLocked(c, SimpleMessage{
				Type:    "clue_rejected",
				Message: "That clue gives away the word.",
			})
			return
		}

		h.clues = append(h.clues, text)
		h.broadcastLocked(ClueMessage{
			Type: "clue",
			Text: text,
		})

	case "end_round":
		h.endRoundLocked(cfg, nil)

	case "lock_lobby":
		locked := msg.Lock != nil && *msg.Lock
		h.lobbyLocked = locked

		h.broadcastLocked(LobbyStateMessage{
			Type:   "lobby_state",
			Locked: locked,
		})

	case "kick":
		target := msg.TargetUsername
		if target == "" {
			return
		}

		kickedPlayerID := ""
		changed := h.removePlayerLocked(func(p Player) bool {
			if strings.EqualFold(p.Username, target) {
				kickedPlayerID = p.PlayerID
				return true
			}
			return false
		})
		if !changed {
			return
		}

		for client := range h.clients {
			if client.playerID == kickedPlayerID {
				h.sendLocked(client, SimpleMessage{
					Type:    "kicked",
					Message: "You have been removed by the clue giver.",
				})
				if _, ok := h.clients[client]; ok {
					delete(h.clients, client)
					close(client.send)
				}
			}
		}

		logf(cfg, "GAMES: Player %q kicked from %s", target, h.id)

		h.broadcastLocked(h.scoreboardLocked())
	}
}

// closeAll disconnects all clients of this hub and stops its loop.
func (h *Hub) closeAll() {
	h.stopOnce.Do(func() { close(h.done) })

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		if c.conn != nil {
			_ = c.conn.Close()
		}
		delete(h.clients, c)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	playerCookieName = "wordguess_id"

	// Largest client message accepted on a game socket, in bytes.
	maxMessageSize = 4096
)

func getOrSetPlayerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(playerCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Println("rand.Read error:", err)
		return ""
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     playerCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// GameManager holds a set of hubs keyed by game ID, so each $path/$gameid
// is its own isolated session. Every hub shares the same evaluator and deck.
type GameManager struct {
	mu          sync.Mutex
	hubs        map[string]*Hub
	idleTimeout time.Duration
	evaluator   *wordmatch.Evaluator
	deck        *Deck
}

func newGameManager(ctx context.Context, idleTimeout time.Duration, evaluator *wordmatch.Evaluator, deck *Deck) *GameManager {
	gm := &GameManager{
		hubs:        make(map[string]*Hub),
		idleTimeout: idleTimeout,
		evaluator:   evaluator,
		deck:        deck,
	}
	if idleTimeout > 0 {
		go gm.reaperLoop(ctx)
	}
	return gm
}

func (gm *GameManager) getHub(cfg *Config, gameID string) *Hub {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if hub, ok := gm.hubs[gameID]; ok {
		return hub
	}

	hub := newHub(gameID, gm.evaluator, gm.deck)
	gm.hubs[gameID] = hub
	go hub.run(cfg)
	return hub
}

// newGameID generates a crypto-random game ID and ensures it doesn't
// collide with existing games.
func (gm *GameManager) newGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	const max = byte(255 - (256 % len(letters)))

	for {
		out := make([]byte, 0, 8)
		buf := make([]byte, 16)

		for len(out) < cap(out) {
			if _, err := rand.Read(buf); err != nil {
				panic("crypto/rand failure: " + err.Error())
			}

			for _, b := range buf {
				if b <= max && len(out) < cap(out) {
					out = append(out, letters[int(b)%len(letters)])
				}
			}
		}
		id := string(out)

		gm.mu.Lock()
		_, exists := gm.hubs[id]
		gm.mu.Unlock()

		if !exists {
			return id
		}
	}
}

// reap removes hubs idle since before cutoff.
func (gm *GameManager) reap(cutoff time.Time) int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	reaped := 0
	for id, hub := range gm.hubs {
		hub.mu.RLock()
		last := hub.lastActive
		hub.mu.RUnlock()

		if last.Before(cutoff) {
			delete(gm.hubs, id)
			go hub.closeAll()
			reaped++
		}
	}

	return reaped
}

// reaperLoop periodically removes hubs that have been idle longer than idleTimeout.
func (gm *GameManager) reaperLoop(ctx context.Context) {
	ticker := time.NewTicker(gm.idleTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.reap(time.Now().Add(-gm.idleTimeout))
		}
	}
}

// WebSocket handler that picks the hub based on :gameid
func serveWSForManager(cfg *Config, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		gameID := ps.ByName("gameid")
		if gameID == "" {
			http.Error(w, "missing game id", http.StatusBadRequest)
			return
		}

		playerID := getOrSetPlayerID(w, r)
		if playerID == "" {
			http.Error(w, "unable to assign player id", http.StatusInternalServerError)
			return
		}

		hub := gm.getHub(cfg, gameID)

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}
		conn.SetReadLimit(maxMessageSize)

		client := &Client{
			conn:     conn,
			send:     make(chan any, 16),
			playerID: playerID,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return
		}

		go client.writePump()
		client.readPump(hub)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unreg <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		var dest chan clientRequest
		switch msg.Type {
		case "join":
			dest = h.joins
		case "set_word", "next_word", "clue", "end_round", "lock_lobby", "kick":
			dest = h.mods
		case "guess":
			dest = h.guesses
		default:
			// ignore unknown types
			continue
		}

		select {
		case dest <- clientRequest{client: c, msg: msg}:
		case <-h.done:
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the current game URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	gameID := ps.ByName("gameid")
	if gameID == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}

	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../:gameid/qr; strip trailing "/qr" to get the game URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

//go:embed assets/wordguess/index.html
var indexHTML []byte

func getIndexHandler(cfg *Config) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		securityHeaders(cfg, w)

		_ = getOrSetPlayerID(w, r)

		_, _ = w.Write(indexHTML)
	}
}

// redirectNewGame handles GET /path by generating a new random game ID
// (with server-side collision detection) and redirecting to /path/:gameid.
func redirectNewGame(cfg *Config, path string, gm *GameManager) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gameID := gm.newGameID()
		logf(cfg, "GAMES: Created game %s/%s", path, gameID)
		http.Redirect(w, r, cfg.prefix+path+"/"+gameID, http.StatusTemporaryRedirect)
	}
}

// registerWordGame sets up routes so that:
//   - $path                  → redirects to new random game (8-char ID)
//   - $path/:gameid          → HTML client
//   - $path/:gameid/ws       → WebSocket for that game
//   - $path/:gameid/qr       → PNG QR code for that game URL
func registerWordGame(cfg *Config, path string, mux *httprouter.Router, gm *GameManager) {
	mux.GET(cfg.prefix+path, redirectNewGame(cfg, path, gm))

	mux.GET(cfg.prefix+path+"/:gameid", getIndexHandler(cfg))

	mux.GET(cfg.prefix+path+"/:gameid/ws", serveWSForManager(cfg, gm))

	mux.GET(cfg.prefix+path+"/:gameid/qr", qrHandler)
}

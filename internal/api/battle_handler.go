package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bstrimzi/battlefactory/internal/constants"
	"github.com/bstrimzi/battlefactory/internal/data"
	"github.com/bstrimzi/battlefactory/internal/engine"
	"github.com/bstrimzi/battlefactory/internal/logging"
	"github.com/bstrimzi/battlefactory/internal/setup"
	"github.com/bstrimzi/battlefactory/internal/storage"

	"github.com/gin-gonic/gin"
)

// BattleHandler groups every battle-related HTTP handler: static-table
// listings, battle session creation, and turn execution.
type BattleHandler struct {
	repo          storage.Repository
	actionTimeout time.Duration
}

func NewBattleHandler(repo storage.Repository, actionTimeout time.Duration) *BattleHandler {
	return &BattleHandler{repo: repo, actionTimeout: actionTimeout}
}

// ListSpecies returns the fixed Pokédex table.
func (h *BattleHandler) ListSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, data.AllSpecies())
}

// ListMoves returns the fixed move table.
func (h *BattleHandler) ListMoves(c *gin.Context) {
	c.JSON(http.StatusOK, data.AllMoves())
}

// ListRentalArchetypes returns the rental-archetype catalogue trainers pick
// their teams from.
func (h *BattleHandler) ListRentalArchetypes(c *gin.Context) {
	archetypes, err := h.repo.ListRentalArchetypes()
	if err != nil {
		logging.Error("failed to list rental archetypes", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRentals})
		return
	}
	c.JSON(http.StatusOK, archetypes)
}

func archetypeToRental(a storage.RentalArchetype) setup.Rental {
	return setup.Rental{
		SpeciesID: a.SpeciesID,
		Level:     a.Level,
		Nature:    data.Nature(a.Nature),
		EVBitset:  [6]uint8{a.EV1, a.EV2, a.EV3, a.EV4, a.EV5, a.EV6},
		MoveIDs:   [4]uint16{a.Move1, a.Move2, a.Move3, a.Move4},
		Item:      data.Item(a.Item),
	}
}

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func parseIDs(raw string) []uint {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, uint(v))
	}
	return out
}

// CreateBattlePayload names up to three rental-archetype IDs per side.
type CreateBattlePayload struct {
	Trainer1RentalIDs []uint `json:"trainer1_rental_ids"`
	Trainer2RentalIDs []uint `json:"trainer2_rental_ids"`
	Seed              uint32 `json:"seed"`
}

// CreateBattle initializes a new hosted battle session from two rental
// teams and persists it, returning its ID for subsequent turn submission.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req CreateBattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.Trainer1RentalIDs) == 0 || len(req.Trainer2RentalIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	email, _ := c.Get("userEmail")
	emailStr, _ := email.(string)

	if _, _, err := h.buildEngine(req.Trainer1RentalIDs, req.Trainer2RentalIDs, req.Seed); err != nil {
		logging.Error("failed to build battle engine", err, nil)
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle, constants.JSONKeyDetails: err.Error()})
		return
	}

	session := &storage.BattleSession{
		Trainer1Email:     emailStr,
		Trainer1RentalIDs: joinIDs(req.Trainer1RentalIDs),
		Trainer2RentalIDs: joinIDs(req.Trainer2RentalIDs),
		Seed:              req.Seed,
		ActionDeadline:    time.Now().Add(h.actionTimeout),
	}
	if err := h.repo.CreateBattleSession(session); err != nil {
		logging.Error("failed to persist battle session", err, nil)
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"battle_id": session.ID})
}

// buildEngine reconstructs a live engine.Engine from rental-archetype IDs,
// re-deriving every derived stat rather than persisting it: the archetype
// catalogue is the only source of truth, a session only remembers which
// archetypes were chosen and the RNG seed.
func (h *BattleHandler) buildEngine(ids1, ids2 []uint, seed uint32) (*engine.Engine, [2][][4]uint16, error) {
	archetypes1, err := h.repo.GetRentalArchetypesByIDs(ids1)
	if err != nil {
		return nil, [2][][4]uint16{}, err
	}
	archetypes2, err := h.repo.GetRentalArchetypesByIDs(ids2)
	if err != nil {
		return nil, [2][][4]uint16{}, err
	}

	p1Mons := make([]setup.BattleMon, 0, len(archetypes1))
	p1Moves := make([][4]uint16, 0, len(archetypes1))
	for _, a := range archetypes1 {
		rental := archetypeToRental(a)
		bm, err := setup.SetupRental(rental)
		if err != nil {
			return nil, [2][][4]uint16{}, err
		}
		p1Mons = append(p1Mons, bm)
		p1Moves = append(p1Moves, rental.MoveIDs)
	}
	p2Mons := make([]setup.BattleMon, 0, len(archetypes2))
	p2Moves := make([][4]uint16, 0, len(archetypes2))
	for _, a := range archetypes2 {
		rental := archetypeToRental(a)
		bm, err := setup.SetupRental(rental)
		if err != nil {
			return nil, [2][][4]uint16{}, err
		}
		p2Mons = append(p2Mons, bm)
		p2Moves = append(p2Moves, rental.MoveIDs)
	}

	e, err := engine.Init(seed, p1Mons, p2Mons, p1Moves, p2Moves)
	return e, [2][][4]uint16{p1Moves, p2Moves}, err
}

// GetBattle returns a battle session's current turn number and outcome.
func (h *BattleHandler) GetBattle(c *gin.Context) {
	id, ok := parseBattleID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	session, err := h.repo.GetBattleSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"battle_id":    session.ID,
		"turn_number":  session.TurnNumber,
		"outcome":      session.Outcome,
		"trainer1":     session.Trainer1Email,
		"trainer2":     session.Trainer2Email,
	})
}

func parseBattleID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("battleID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// ExecuteTurnPayload carries both trainers' declared actions for the turn.
type ExecuteTurnPayload struct {
	Trainer1Action ActionPayload `json:"trainer1_action"`
	Trainer2Action ActionPayload `json:"trainer2_action"`
}

// ActionPayload is the wire shape of engine.Action.
type ActionPayload struct {
	Kind      uint8 `json:"kind"` // 0=move, 1=switch, 2=run
	MoveSlot  int   `json:"move_slot"`
	TeamIndex int   `json:"team_index"`
}

func toEngineAction(p ActionPayload) engine.Action {
	return engine.Action{Kind: engine.ActionKind(p.Kind), MoveSlot: p.MoveSlot, TeamIndex: p.TeamIndex}
}

// actionPair is one historical turn's submitted actions, persisted so a
// session can be replayed from scratch on every request.
type actionPair struct {
	Trainer1 ActionPayload `json:"trainer1"`
	Trainer2 ActionPayload `json:"trainer2"`
}

// ExecuteTurn replays the session's full turn history to rebuild the live
// engine, then resolves one more turn and persists the result. Rebuilding
// from scratch on every call keeps the battle session stateless between
// HTTP requests, at the cost of O(turns) work per call — acceptable for a
// format capped at a handful of Pokémon per side and dozens of turns.
func (h *BattleHandler) ExecuteTurn(c *gin.Context) {
	id, ok := parseBattleID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleID})
		return
	}
	session, err := h.repo.GetBattleSessionByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	if session.Outcome != uint8(engine.Ongoing) {
		c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleAlreadyOver})
		return
	}

	var req ExecuteTurnPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidAction})
		return
	}

	ids1 := parseIDs(session.Trainer1RentalIDs)
	ids2 := parseIDs(session.Trainer2RentalIDs)
	e, _, err := h.buildEngine(ids1, ids2, session.Seed)
	if err != nil {
		logging.Error("failed to rebuild battle engine", err, logging.Fields{constants.LogFieldBattleID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedExecuteTurn})
		return
	}

	var pastActions []actionPair
	_ = storage.DecodeTurnLog(session.ActionsLogJSON, &pastActions)
	for _, pair := range pastActions {
		if _, err := e.Execute(toEngineAction(pair.Trainer1), toEngineAction(pair.Trainer2)); err != nil {
			logging.Error("failed to replay past turn", err, logging.Fields{constants.LogFieldBattleID: id})
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedExecuteTurn})
			return
		}
	}

	results, err := e.Execute(toEngineAction(req.Trainer1Action), toEngineAction(req.Trainer2Action))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrFailedExecuteTurn, constants.JSONKeyDetails: err.Error()})
		return
	}

	pastActions = append(pastActions, actionPair{Trainer1: req.Trainer1Action, Trainer2: req.Trainer2Action})
	if actionsJSON, err := storage.EncodeTurnLog(pastActions); err != nil {
		logging.Error("failed to encode actions log", err, logging.Fields{constants.LogFieldBattleID: id})
	} else {
		session.ActionsLogJSON = actionsJSON
	}

	var resultHistory []engine.MoveResult
	_ = storage.DecodeTurnLog(session.TurnLogJSON, &resultHistory)
	resultHistory = append(resultHistory, results...)
	if resultsJSON, err := storage.EncodeTurnLog(resultHistory); err != nil {
		logging.Error("failed to encode turn log", err, logging.Fields{constants.LogFieldBattleID: id})
	} else {
		session.TurnLogJSON = resultsJSON
	}
	session.TurnNumber = e.TurnNumber()
	session.Outcome = uint8(e.Outcome())
	session.ActionDeadline = time.Now().Add(h.actionTimeout)

	if err := h.repo.UpdateBattleSession(session); err != nil {
		logging.Error("failed to persist turn result", err, logging.Fields{constants.LogFieldBattleID: id})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedExecuteTurn})
		return
	}

	if e.Outcome() != engine.Ongoing && (session.Trainer1Email != "" || session.Trainer2Email != "") {
		winner, loser := session.Trainer1Email, session.Trainer2Email
		if e.Outcome() == engine.Player2Wins {
			winner, loser = session.Trainer2Email, session.Trainer1Email
		}
		if err := h.repo.RecordBattleResult(winner, loser); err != nil {
			logging.Error("failed to record battle result", err, logging.Fields{constants.LogFieldBattleID: id})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     results,
		"turn_number": session.TurnNumber,
		"outcome":     session.Outcome,
	})
}

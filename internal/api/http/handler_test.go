package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guess-the-liar/internal/api/ws"
	"guess-the-liar/internal/config"
	"guess-the-liar/internal/prompts"
	"guess-the-liar/internal/room"
	"guess-the-liar/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bank, err := prompts.Default()
	require.NoError(t, err)

	rm := room.NewManager(store.NewMemoryStore(), config.Default(), bank)
	hub := ws.NewHub(rm)
	rm.SetBroadcaster(hub)
	return NewRouter(rm, hub, config.Default())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRoomLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-room", CreateRoomRequest{PlayerName: "Host"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)
	code := created["roomCode"].(string)
	hostID := created["playerId"].(string)
	require.NotEmpty(t, code)
	require.NotEmpty(t, hostID)

	w = doJSON(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: code, PlayerName: "Ana"})
	require.Equal(t, http.StatusOK, w.Code)
	anaID := decode(t, w)["playerId"].(string)

	w = doJSON(t, r, http.MethodPost, "/start-round", StartRoundRequest{RoomCode: code, PlayerID: hostID, Mode: "liar"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/room-state?roomCode="+code+"&playerId="+anaID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap := decode(t, w)["room"].(map[string]any)
	assert.Equal(t, "answer", snap["phase"])
	assert.Len(t, snap["players"], 2)

	w = doJSON(t, r, http.MethodPost, "/submit-answer", AnswerRequest{RoomCode: code, PlayerID: anaID, Answer: "sunrise"})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/submit-answer", AnswerRequest{RoomCode: code, PlayerID: hostID, Answer: "sunset"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/submit-vote", VoteRequest{RoomCode: code, PlayerID: anaID, Accused: []string{hostID}})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/submit-vote", VoteRequest{RoomCode: code, PlayerID: hostID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/room-state?roomCode="+code+"&playerId="+anaID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	snap = decode(t, w)["room"].(map[string]any)
	assert.Equal(t, "reveal", snap["phase"])

	w = doJSON(t, r, http.MethodPost, "/end-match", RoomActionRequest{RoomCode: code, PlayerID: hostID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/close-room", RoomActionRequest{RoomCode: code, PlayerID: hostID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/room-state?roomCode="+code, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestErrorStatuses(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-room", CreateRoomRequest{PlayerName: "Host"})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode(t, w)
	code := created["roomCode"].(string)
	hostID := created["playerId"].(string)

	w = doJSON(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: code, PlayerName: "Ana"})
	require.Equal(t, http.StatusOK, w.Code)
	anaID := decode(t, w)["playerId"].(string)

	t.Run("missing fields give 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/create-room", CreateRoomRequest{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown room gives 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: "NOPE42", PlayerName: "Ben"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("taken name gives 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/join-room", JoinRoomRequest{RoomCode: code, PlayerName: "Ana"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-creator start gives 403", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/start-round", StartRoundRequest{RoomCode: code, PlayerID: anaID, Mode: "liar"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("out-of-phase command gives 409", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/submit-answer", AnswerRequest{RoomCode: code, PlayerID: anaID, Answer: "early"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("turn violation gives 409", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/start-round", StartRoundRequest{RoomCode: code, PlayerID: hostID, Mode: "oneword"})
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, r, http.MethodPost, "/submit-clue", ClueRequest{RoomCode: code, PlayerID: anaID, Clue: "word"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestScoringConfigEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/config/scoring", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.EqualValues(t, 1, got["correctAccusation"])
	assert.EqualValues(t, 2, got["perfectDeception"])
	assert.EqualValues(t, 1, got["perEvadedVoter"])

	w = doJSON(t, r, http.MethodPost, "/config/scoring", UpdateScoringRequest{
		CorrectAccusation: 3,
		PerfectDeception:  5,
		PerEvadedVoter:    2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/config/scoring", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got = decode(t, w)
	assert.EqualValues(t, 3, got["correctAccusation"])

	t.Run("negative coefficients rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/config/scoring", UpdateScoringRequest{CorrectAccusation: -1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRoomQR(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create-room", CreateRoomRequest{PlayerName: "Host"})
	require.Equal(t, http.StatusOK, w.Code)
	code := decode(t, w)["roomCode"].(string)

	w = doJSON(t, r, http.MethodGet, "/room-qr?roomCode="+code, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodGet, "/room-qr?roomCode=NOPE42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

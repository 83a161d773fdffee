package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName  = "tjstuff"
	keySessionID = "sid"
	keySelection = "selection"
)

// Selection is a session's dashboard state. A nil PitchTypes means no pitch
// type filter; an empty one selects nothing.
type Selection struct {
	PitchTypes []string `json:"pitch_types"`
	Pitcher    string   `json:"pitcher,omitempty"`
}

func (s *Server) session(r *http.Request) *sessions.Session {
	// a bad or stale cookie still yields a usable new session
	sess, _ := s.sessionStore.Get(r, sessionName)
	if _, ok := sess.Values[keySessionID].(string); !ok {
		sess.Values[keySessionID] = uuid.NewString()
	}
	return sess
}

func sessionID(sess *sessions.Session) string {
	id, _ := sess.Values[keySessionID].(string)
	return id
}

func loadSelection(sess *sessions.Session) (Selection, bool) {
	raw, ok := sess.Values[keySelection].(string)
	if !ok {
		return Selection{}, false
	}
	var sel Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return Selection{}, false
	}
	return sel, true
}

func (s *Server) saveSelection(w http.ResponseWriter, r *http.Request, sess *sessions.Session, sel Selection) error {
	b, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	sess.Values[keySelection] = string(b)
	return sess.Save(r, w)
}

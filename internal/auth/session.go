package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "workoutlog-session||"
	tokensSetKey     = "workoutlog-sessions"
)

var ErrMalformedSession = errors.New("malformed session value")

type LoginSession struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func encodeSession(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

// decodeSession parses values written by encodeSession.
func decodeSession(val string) (userID string, createdAt time.Time, err error) {
	sep := strings.LastIndex(val, "|")
	if sep <= 0 {
		return "", time.Time{}, ErrMalformedSession
	}

	createdAtUnix, err := strconv.ParseInt(val[sep+1:], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrMalformedSession, err)
	}

	return val[:sep], time.Unix(createdAtUnix, 0), nil
}

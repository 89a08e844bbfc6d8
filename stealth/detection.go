package stealth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
)

// LinkedInError represents a detected LinkedIn error state.
type LinkedInError struct {
	Type        ErrorType
	Message     string
	Recoverable bool
}

func (e *LinkedInError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// ErrorType categorizes the states this tool can run into.
type ErrorType string

const (
	ErrorSessionExpired ErrorType = "SESSION_EXPIRED"
	ErrorCheckpoint     ErrorType = "CHECKPOINT"
	ErrorProfileGone    ErrorType = "PROFILE_UNAVAILABLE"
	ErrorPageNotLoaded  ErrorType = "PAGE_NOT_LOADED"
)

// URL fragments that identify each state.
var urlPatterns = map[ErrorType][]string{
	ErrorSessionExpired: {"/login", "/uas/login", "/authwall"},
	ErrorCheckpoint:     {"/checkpoint/", "/checkpoint?"},
}

// Body text fragments checked when the URL looks normal.
var textPatterns = map[ErrorType][]string{
	ErrorProfileGone: {
		"this page doesn't exist",
		"page not found",
		"profile not found",
		"this profile is not available",
	},
	ErrorSessionExpired: {
		"session has expired",
		"please sign in again",
		"you've been signed out",
	},
}

// CheckPage inspects the current page for error states. A nil return means
// the page looks fine.
func CheckPage(page *rod.Page) *LinkedInError {
	info, err := page.Info()
	if err != nil {
		return &LinkedInError{
			Type:        ErrorPageNotLoaded,
			Message:     "failed to get page info",
			Recoverable: true,
		}
	}

	if e := checkURL(info.URL); e != nil {
		return e
	}

	// Body scan is slower; bound it
	bodyPage := page.Timeout(5 * time.Second)
	defer bodyPage.CancelTimeout()

	res, err := bodyPage.Eval(`() => document.body ? document.body.innerText.toLowerCase() : ''`)
	if err != nil {
		return nil // skip the text check rather than fail on it
	}
	body := res.Value.String()

	for errType, patterns := range textPatterns {
		for _, pattern := range patterns {
			if strings.Contains(body, pattern) {
				return newError(errType)
			}
		}
	}

	return nil
}

// CheckURL inspects only the page URL. Cheap enough to run after every
// navigation.
func CheckURL(page *rod.Page) *LinkedInError {
	info, err := page.Info()
	if err != nil {
		return &LinkedInError{
			Type:        ErrorPageNotLoaded,
			Message:     "failed to get page info",
			Recoverable: true,
		}
	}
	return checkURL(info.URL)
}

func checkURL(url string) *LinkedInError {
	lower := strings.ToLower(url)
	for errType, patterns := range urlPatterns {
		for _, pattern := range patterns {
			if strings.Contains(lower, pattern) {
				return newError(errType)
			}
		}
	}
	return nil
}

func newError(errType ErrorType) *LinkedInError {
	e := &LinkedInError{Type: errType}
	switch errType {
	case ErrorSessionExpired:
		e.Message = "session expired - re-authentication required"
		e.Recoverable = false
	case ErrorCheckpoint:
		e.Message = "checkpoint detected (captcha or 2FA required)"
		e.Recoverable = false
	case ErrorProfileGone:
		e.Message = "profile is unavailable"
		e.Recoverable = true
	default:
		e.Message = "page failed to load"
		e.Recoverable = true
	}
	return e
}

// IsSessionError reports whether err means the authenticated session is no
// longer usable and the whole run must stop.
func IsSessionError(err error) bool {
	var le *LinkedInError
	if !errors.As(err, &le) {
		return false
	}
	return le.Type == ErrorSessionExpired || le.Type == ErrorCheckpoint
}

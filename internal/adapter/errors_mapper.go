package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/godbus/dbus/v5"
)

// D-Bus error names mapped onto the sentinels of this package.
const (
	dbusErrServiceUnknown  = "org.freedesktop.DBus.Error.ServiceUnknown"
	dbusErrNameHasNoOwner  = "org.freedesktop.DBus.Error.NameHasNoOwner"
	dbusErrUnknownObject   = "org.freedesktop.DBus.Error.UnknownObject"
	dbusErrAccessDenied    = "org.freedesktop.DBus.Error.AccessDenied"
	dbusErrAuthFailed      = "org.freedesktop.DBus.Error.AuthFailed"
	dbusErrInteractiveAuth = "org.freedesktop.DBus.Error.InteractiveAuthorizationRequired"
	dbusErrNoReply         = "org.freedesktop.DBus.Error.NoReply"
	dbusErrTimeout         = "org.freedesktop.DBus.Error.Timeout"
	dbusErrTimedOut        = "org.freedesktop.DBus.Error.TimedOut"
	dbusErrDisconnected    = "org.freedesktop.DBus.Error.Disconnected"
)

// mapDBusError wraps err into one of the transport sentinels. method names
// the remote call for the message. nil stays nil.
func mapDBusError(method string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %w", method, ErrNoReply, err)
	}

	var name string
	var body []interface{}

	var dbusErr dbus.Error
	var dbusErrPtr *dbus.Error
	switch {
	case errors.As(err, &dbusErr):
		name, body = dbusErr.Name, dbusErr.Body
	case errors.As(err, &dbusErrPtr) && dbusErrPtr != nil:
		name, body = dbusErrPtr.Name, dbusErrPtr.Body
	default:
		return fmt.Errorf("%s: %w", method, err)
	}

	msg := remoteMessage(body)
	if msg == "" {
		msg = name
	}

	switch name {
	case dbusErrServiceUnknown, dbusErrNameHasNoOwner, dbusErrUnknownObject, dbusErrDisconnected:
		return fmt.Errorf("%s: %w: %s", method, ErrServiceUnavailable, msg)
	case dbusErrAccessDenied, dbusErrAuthFailed, dbusErrInteractiveAuth:
		return fmt.Errorf("%s: %w: %s", method, ErrAccessDenied, msg)
	case dbusErrNoReply, dbusErrTimeout, dbusErrTimedOut:
		return fmt.Errorf("%s: %w: %s", method, ErrNoReply, msg)
	default:
		return fmt.Errorf("%s: %w: %s", method, ErrRemote, msg)
	}
}

// remoteMessage extracts the human readable text of a D-Bus error body.
// RHSM1 services put a JSON object with a "message" key in the first body
// element; other services put plain text there.
func remoteMessage(body []interface{}) string {
	if len(body) == 0 {
		return ""
	}
	text, ok := body[0].(string)
	if !ok {
		return ""
	}
	text = strings.TrimSpace(text)

	var rhsmErr struct {
		Message string `json:"message"`
	}
	if strings.HasPrefix(text, "{") && json.Unmarshal([]byte(text), &rhsmErr) == nil && rhsmErr.Message != "" {
		return rhsmErr.Message
	}

	return text
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorText(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorText prefers the "error" field of a JSON error envelope and falls
// back to the raw body.
func errorText(raw []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}

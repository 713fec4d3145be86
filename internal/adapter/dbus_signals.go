package adapter

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// signalBuffer is the capacity of the raw godbus signal channel.
const signalBuffer = 16

func changeMatches() [][]dbus.MatchOption {
	return [][]dbus.MatchOption{
		{
			dbus.WithMatchObjectPath(EntitlementStatusPath),
			dbus.WithMatchInterface(EntitlementStatusInterface),
			dbus.WithMatchMember(EntitlementStatusChangedMember),
		},
		{
			dbus.WithMatchObjectPath(EntitlementStatusPath),
			dbus.WithMatchInterface(PropertiesInterface),
			dbus.WithMatchMember(PropertiesChangedMember),
		},
	}
}

// classifySignal maps a raw signal onto a [ChangeSignal]. ok is false for
// signals of other objects or members.
func classifySignal(sig *dbus.Signal) (ChangeSignal, bool) {
	if sig == nil || sig.Path != EntitlementStatusPath {
		return 0, false
	}

	switch sig.Name {
	case EntitlementStatusInterface + "." + EntitlementStatusChangedMember:
		return SignalEntitlementStatusChanged, true
	case PropertiesInterface + "." + PropertiesChangedMember:
		return SignalPropertiesChanged, true
	default:
		return 0, false
	}
}

// SubscribeChanges implements [SubscriptionAdapter].
func (a *dbusAdapter) SubscribeChanges(ctx context.Context) (<-chan ChangeSignal, error) {
	matches := changeMatches()
	for i, match := range matches {
		if err := a.conn.AddMatchSignal(match...); err != nil {
			for _, added := range matches[:i] {
				_ = a.conn.RemoveMatchSignal(added...)
			}
			return nil, fmt.Errorf("add signal match: %w", mapDBusError("AddMatch", err))
		}
	}

	raw := make(chan *dbus.Signal, signalBuffer)
	a.conn.Signal(raw)

	out := make(chan ChangeSignal)
	go func() {
		defer close(out)
		defer func() {
			a.conn.RemoveSignal(raw)
			for _, match := range matches {
				_ = a.conn.RemoveMatchSignal(match...)
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-raw:
				if !ok {
					a.logger.Warn().Msg("signal channel closed by bus connection")
					return
				}
				change, ok := classifySignal(sig)
				if !ok {
					continue
				}
				a.logger.Debug().Stringer("signal", change).Msg("entitlement change signal")
				select {
				case out <- change:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

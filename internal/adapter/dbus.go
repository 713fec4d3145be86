package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhsm-sync/internal/config"
	"github.com/MKhiriev/rhsm-sync/internal/logger"
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/godbus/dbus/v5"
)

// RHSM1 bus names, object paths and interfaces.
const (
	RHSMBusName = "com.redhat.RHSM1"

	RegisterServerPath      dbus.ObjectPath = "/com/redhat/RHSM1/RegisterServer"
	RegisterServerInterface                 = "com.redhat.RHSM1.RegisterServer"

	RegisterPath      dbus.ObjectPath = "/com/redhat/RHSM1/Register"
	RegisterInterface                 = "com.redhat.RHSM1.Register"

	AttachPath      dbus.ObjectPath = "/com/redhat/RHSM1/Attach"
	AttachInterface                 = "com.redhat.RHSM1.Attach"

	EntitlementPath      dbus.ObjectPath = "/com/redhat/RHSM1/Entitlement"
	EntitlementInterface                 = "com.redhat.RHSM1.Entitlement"

	UnregisterPath      dbus.ObjectPath = "/com/redhat/RHSM1/Unregister"
	UnregisterInterface                 = "com.redhat.RHSM1.Unregister"

	ProductsPath      dbus.ObjectPath = "/com/redhat/RHSM1/Products"
	ProductsInterface                 = "com.redhat.RHSM1.Products"
)

// Legacy subscription-manager service.
const (
	LegacyBusName = "com.redhat.SubscriptionManager"

	EntitlementStatusPath      dbus.ObjectPath = "/EntitlementStatus"
	EntitlementStatusInterface                 = "com.redhat.SubscriptionManager.EntitlementStatus"

	EntitlementStatusChangedMember = "entitlement_status_changed"

	PropertiesInterface     = "org.freedesktop.DBus.Properties"
	PropertiesChangedMember = "PropertiesChanged"
)

// Bus address keywords accepted by [NewDBusAdapter].
const (
	BusSystem  = "system"
	BusSession = "session"
)

// busConn is the subset of *dbus.Conn the adapter uses.
type busConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	AddMatchSignal(options ...dbus.MatchOption) error
	RemoveMatchSignal(options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
	Close() error
}

// dialFunc opens a connection to a D-Bus address.
type dialFunc func(address string) (busConn, error)

type dbusAdapter struct {
	conn        busConn
	dialPrivate dialFunc

	logger *logger.Logger
}

// NewDBusAdapter connects to the bus selected by cfg.BusAddress and returns a
// [SubscriptionAdapter] over it. The empty value and "system" select the
// system bus, "session" the session bus, anything else is dialled as a D-Bus
// address.
func NewDBusAdapter(cfg config.ClientAdapter, log *logger.Logger) (SubscriptionAdapter, error) {
	conn, err := connectBus(cfg.BusAddress)
	if err != nil {
		return nil, fmt.Errorf("connect to bus %q: %w", cfg.BusAddress, err)
	}

	return newDBusAdapter(conn, dialPrivateBus, log), nil
}

func newDBusAdapter(conn busConn, dial dialFunc, log *logger.Logger) *dbusAdapter {
	return &dbusAdapter{
		conn:        conn,
		dialPrivate: dial,
		logger:      log.Component("dbus"),
	}
}

func connectBus(address string) (*dbus.Conn, error) {
	switch address {
	case "", BusSystem:
		return dbus.ConnectSystemBus()
	case BusSession:
		return dbus.ConnectSessionBus()
	default:
		return dbus.Connect(address)
	}
}

// dialPrivateBus opens the peer-to-peer connection served by
// RegisterServer.Start. There is no bus daemon on the other end, so the
// connection is authenticated but never sends Hello.
func dialPrivateBus(address string) (busConn, error) {
	conn, err := dbus.Dial(address)
	if err != nil {
		return nil, err
	}
	if err = conn.Auth(nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}

// call issues iface.method on obj and stores the reply body into out.
func (a *dbusAdapter) call(ctx context.Context, obj dbus.BusObject, iface, method string, out []interface{}, args ...interface{}) error {
	name := iface + "." + method

	c := obj.CallWithContext(ctx, name, 0, args...)
	if c.Err != nil {
		err := mapDBusError(name, c.Err)
		a.logger.Debug().Err(err).Str("method", name).Msg("remote call failed")
		return err
	}

	if len(out) > 0 {
		if err := c.Store(out...); err != nil {
			return fmt.Errorf("%s: %w: %w", name, ErrUnexpectedReply, err)
		}
	}

	return nil
}

func (a *dbusAdapter) rhsm(path dbus.ObjectPath) dbus.BusObject {
	return a.conn.Object(RHSMBusName, path)
}

// StartRegisterServer implements [SubscriptionAdapter].
func (a *dbusAdapter) StartRegisterServer(ctx context.Context) (string, error) {
	var address string
	err := a.call(ctx, a.rhsm(RegisterServerPath), RegisterServerInterface, "Start", []interface{}{&address})
	if err != nil {
		return "", err
	}
	a.logger.Debug().Str("address", address).Msg("private registration bus started")
	return address, nil
}

// StopRegisterServer implements [SubscriptionAdapter].
func (a *dbusAdapter) StopRegisterServer(ctx context.Context) error {
	return a.call(ctx, a.rhsm(RegisterServerPath), RegisterServerInterface, "Stop", nil)
}

// Register implements [SubscriptionAdapter].
func (a *dbusAdapter) Register(ctx context.Context, address, org, user, password string, opts models.RegisterOptions) error {
	return a.withPrivateBus(address, func(obj dbus.BusObject) error {
		return a.call(ctx, obj, RegisterInterface, "Register", nil,
			org, user, password, registerOptions(opts, nil), connectionOptions(opts))
	})
}

// RegisterWithActivationKeys implements [SubscriptionAdapter].
func (a *dbusAdapter) RegisterWithActivationKeys(ctx context.Context, address, org string, keys []string, opts models.RegisterOptions) error {
	return a.withPrivateBus(address, func(obj dbus.BusObject) error {
		return a.call(ctx, obj, RegisterInterface, "RegisterWithActivationKeys", nil,
			org, keys, registerOptions(opts, keys), connectionOptions(opts))
	})
}

func (a *dbusAdapter) withPrivateBus(address string, fn func(obj dbus.BusObject) error) error {
	priv, err := a.dialPrivate(address)
	if err != nil {
		return fmt.Errorf("open private bus %q: %w", address, mapDBusError("dial", err))
	}
	defer func() {
		if cerr := priv.Close(); cerr != nil {
			a.logger.Warn().Err(cerr).Msg("closing private registration bus")
		}
	}()

	return fn(priv.Object("", RegisterPath))
}

// AutoAttach implements [SubscriptionAdapter].
func (a *dbusAdapter) AutoAttach(ctx context.Context) error {
	return a.call(ctx, a.rhsm(AttachPath), AttachInterface, "AutoAttach", nil, "", emptyOptions())
}

// Unregister implements [SubscriptionAdapter].
func (a *dbusAdapter) Unregister(ctx context.Context) error {
	return a.call(ctx, a.rhsm(UnregisterPath), UnregisterInterface, "Unregister", nil, emptyOptions())
}

// GetStatus implements [SubscriptionAdapter].
func (a *dbusAdapter) GetStatus(ctx context.Context) (string, error) {
	var status string
	err := a.call(ctx, a.rhsm(EntitlementPath), EntitlementInterface, "GetStatus", []interface{}{&status}, "")
	return status, err
}

// ListInstalledProducts implements [SubscriptionAdapter].
func (a *dbusAdapter) ListInstalledProducts(ctx context.Context) (string, error) {
	var products string
	err := a.call(ctx, a.rhsm(ProductsPath), ProductsInterface, "ListInstalledProducts", []interface{}{&products}, "", emptyOptions())
	return products, err
}

// CheckStatus implements [SubscriptionAdapter].
func (a *dbusAdapter) CheckStatus(ctx context.Context) (int32, error) {
	var code int32
	obj := a.conn.Object(LegacyBusName, EntitlementStatusPath)
	err := a.call(ctx, obj, EntitlementStatusInterface, "check_status", []interface{}{&code})
	return code, err
}

// Close implements [SubscriptionAdapter].
func (a *dbusAdapter) Close() error {
	return a.conn.Close()
}

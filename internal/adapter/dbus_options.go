package adapter

import (
	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/godbus/dbus/v5"
)

func emptyOptions() map[string]dbus.Variant {
	return map[string]dbus.Variant{}
}

// registerOptions builds the a{sv} options of Register and
// RegisterWithActivationKeys. Port and handler are only sent when present.
func registerOptions(opts models.RegisterOptions, keys []string) map[string]dbus.Variant {
	out := emptyOptions()

	if len(keys) > 0 {
		out["activation_keys"] = dbus.MakeVariant(keys)
	}

	if s := opts.Server; s != nil {
		out["host"] = dbus.MakeVariant(s.Host)
		if s.Port != "" {
			out["port"] = dbus.MakeVariant(s.Port)
		}
		if s.Handler != "" {
			out["handler"] = dbus.MakeVariant(s.Handler)
		}
	}

	return out
}

// connectionOptions builds the a{sv} connection options, which only carry
// proxy settings.
func connectionOptions(opts models.RegisterOptions) map[string]dbus.Variant {
	out := emptyOptions()

	if p := opts.Proxy; p != nil {
		out["proxy_hostname"] = dbus.MakeVariant(p.Hostname)
		out["proxy_user"] = dbus.MakeVariant(p.User)
		out["proxy_password"] = dbus.MakeVariant(p.Password)
	}

	return out
}

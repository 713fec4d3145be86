package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServerURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    ServerURL
		wantErr bool
	}{
		{raw: "subscription.rhsm.redhat.com", want: ServerURL{Host: "subscription.rhsm.redhat.com"}},
		{raw: "satellite.example.com:8443", want: ServerURL{Host: "satellite.example.com", Port: "8443"}},
		{raw: "https://satellite.example.com:8443/rhsm", want: ServerURL{Host: "satellite.example.com", Port: "8443", Handler: "/rhsm"}},
		{raw: "http://candlepin/candlepin", want: ServerURL{Host: "candlepin", Handler: "/candlepin"}},
		{raw: "  host.example.com  ", want: ServerURL{Host: "host.example.com"}},
		{raw: ":8443", wantErr: true},
		{raw: "host:abc", wantErr: true},
		{raw: "host:", wantErr: true},
		{raw: "host/", wantErr: true},
		{raw: "host:8443/", wantErr: true},
		{raw: "https://", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseServerURL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidServerURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistrationDetails_Validate(t *testing.T) {
	tests := []struct {
		name    string
		details RegistrationDetails
		wantErr error
	}{
		{name: "user and password", details: RegistrationDetails{Org: "acme", User: "u", Password: "p"}},
		{name: "activation keys", details: RegistrationDetails{Org: "acme", ActivationKeys: "k1,k2"}},
		{name: "default url", details: RegistrationDetails{Org: "acme", ActivationKeys: "k", URL: DefaultServerURL}},
		{name: "no org", details: RegistrationDetails{Org: " ", User: "u", Password: "p"}, wantErr: ErrMissingOrganization},
		{name: "no password", details: RegistrationDetails{Org: "acme", User: "u"}, wantErr: ErrMissingCredentials},
		{name: "blank keys need credentials", details: RegistrationDetails{Org: "acme", ActivationKeys: "  "}, wantErr: ErrMissingCredentials},
		{name: "proxy without server", details: RegistrationDetails{Org: "acme", ActivationKeys: "k", Proxy: true}, wantErr: ErrMissingProxyServer},
		{name: "bad url", details: RegistrationDetails{Org: "acme", ActivationKeys: "k", URL: "host:x"}, wantErr: ErrInvalidServerURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistrationDetails_Keys(t *testing.T) {
	d := RegistrationDetails{ActivationKeys: " a, b ,,c "}
	assert.Equal(t, []string{"a", "b", "c"}, d.Keys())
	assert.True(t, d.UsesActivationKeys())

	assert.Empty(t, RegistrationDetails{}.Keys())
	assert.False(t, RegistrationDetails{}.UsesActivationKeys())
}

func TestRegistrationDetails_Options(t *testing.T) {
	d := RegistrationDetails{
		URL:         "satellite.example.com:443/rhsm",
		Proxy:       true,
		ProxyServer: " proxy:3128 ",
		ProxyUser:   "pu",
		ProxyPass:   "pp",
	}

	opts, err := d.Options()

	require.NoError(t, err)
	assert.Equal(t, &ServerURL{Host: "satellite.example.com", Port: "443", Handler: "/rhsm"}, opts.Server)
	assert.Equal(t, &ProxyOptions{Hostname: "proxy:3128", User: "pu", Password: "pp"}, opts.Proxy)

	opts, err = RegistrationDetails{URL: DefaultServerURL}.Options()
	require.NoError(t, err)
	assert.Nil(t, opts.Server)
	assert.Nil(t, opts.Proxy)
}

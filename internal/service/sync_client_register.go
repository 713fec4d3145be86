package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rhsm-sync/models"
)

// RegisterSystem validates details, registers over the private bus handed
// out by RegisterServer, auto-attaches and finally refreshes the status.
// The first failing step aborts the rest.
func (c *syncClient) RegisterSystem(ctx context.Context, details models.RegistrationDetails) error {
	step, err := c.register(ctx, details)
	c.metrics.RecordRegistration(step, err)
	if err != nil {
		c.logger.Err(err).Str("step", step).Str("org", details.Org).Msg("registration failed")
		return &RegistrationError{Step: step, Err: err}
	}

	c.logger.Info().Str("org", details.Org).Msg("system registered")
	c.RequestStatusRefresh()
	return nil
}

func (c *syncClient) register(ctx context.Context, details models.RegistrationDetails) (string, error) {
	if err := details.Validate(); err != nil {
		return StepValidate, err
	}
	opts, err := details.Options()
	if err != nil {
		return StepValidate, err
	}

	started := time.Now()
	address, err := c.adapter.StartRegisterServer(ctx)
	c.metrics.ObserveRemoteCall("register_server_start", started, err)
	if err != nil {
		return StepStart, err
	}

	started = time.Now()
	if details.UsesActivationKeys() {
		err = c.adapter.RegisterWithActivationKeys(ctx, address, details.Org, details.Keys(), opts)
		c.metrics.ObserveRemoteCall("register_with_activation_keys", started, err)
	} else {
		err = c.adapter.Register(ctx, address, details.Org, details.User, details.Password, opts)
		c.metrics.ObserveRemoteCall("register", started, err)
	}
	if err != nil {
		return StepRegister, err
	}

	started = time.Now()
	err = c.adapter.StopRegisterServer(ctx)
	c.metrics.ObserveRemoteCall("register_server_stop", started, err)
	if err != nil {
		return StepStop, err
	}

	started = time.Now()
	err = c.adapter.AutoAttach(ctx)
	c.metrics.ObserveRemoteCall("auto_attach", started, err)
	if err != nil {
		return StepAttach, err
	}

	return "", nil
}

package service

import (
	"testing"

	"github.com/MKhiriev/rhsm-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "current", raw: `{"status": "Current", "reasons": {}, "valid": true}`, want: "Current"},
		{name: "empty status", raw: `{"status": ""}`, want: ""},
		{name: "missing", raw: `{}`, wantErr: true},
		{name: "garbage", raw: `<html>`, wantErr: true},
		{name: "wrong type", raw: `{"status": 3}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeStatus(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeProducts(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []models.ProductRecord
		wantErr bool
	}{
		{
			name: "keeps order and duplicates",
			raw:  `[["B", "2", "1", "x86_64", "subscribed"], ["A", "1", "1", "x86_64", "expired"], ["B", "2", "1", "x86_64", "subscribed"]]`,
			want: []models.ProductRecord{
				{ProductName: "B", ProductID: "2", Version: "1", Arch: "x86_64", Status: "subscribed"},
				{ProductName: "A", ProductID: "1", Version: "1", Arch: "x86_64", Status: "expired"},
				{ProductName: "B", ProductID: "2", Version: "1", Arch: "x86_64", Status: "subscribed"},
			},
		},
		{
			name: "eight-column rows keep the first five",
			raw:  `[["A", "1", "1", "aarch64", "subscribed", "Current", "2026-01-01", "2027-01-01"]]`,
			want: []models.ProductRecord{
				{ProductName: "A", ProductID: "1", Version: "1", Arch: "aarch64", Status: "subscribed"},
			},
		},
		{name: "empty list", raw: ` [] `, want: []models.ProductRecord{}},
		{name: "null", raw: `null`, wantErr: true},
		{name: "object", raw: `{"products": []}`, wantErr: true},
		{name: "row not a list", raw: `["A"]`, wantErr: true},
		{name: "null row", raw: `[null]`, wantErr: true},
		{name: "four columns", raw: `[["A", "1", "1", "x86_64"]]`, wantErr: true},
		{name: "number column", raw: `[["A", 1, "1", "x86_64", "subscribed"]]`, wantErr: true},
		{name: "null column", raw: `[["A", "1", null, "x86_64", "subscribed"]]`, wantErr: true},
		{name: "truncated", raw: `[["A", "1"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeProducts(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedProducts)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

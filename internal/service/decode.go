package service

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/rhsm-sync/models"
)

// productColumns is the number of leading tuple elements a product row must
// carry: name, id, version, arch and status. Extra columns are ignored.
const productColumns = 5

type statusPayload struct {
	Status *string `json:"status"`
}

// decodeStatus extracts the "status" field of an Entitlement.GetStatus reply.
func decodeStatus(raw string) (string, error) {
	var p statusPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedStatus, err)
	}
	if p.Status == nil {
		return "", fmt.Errorf("%w: no status field", ErrMalformedStatus)
	}
	return *p.Status, nil
}

// decodeProducts parses the ListInstalledProducts reply into records,
// keeping the remote order.
func decodeProducts(raw string) ([]models.ProductRecord, error) {
	data := bytes.TrimSpace([]byte(raw))
	if bytes.Equal(data, []byte("null")) {
		return nil, fmt.Errorf("%w: null list", ErrMalformedProducts)
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProducts, err)
	}

	products := make([]models.ProductRecord, 0, len(rows))
	for i, row := range rows {
		var cols []json.RawMessage
		if err := json.Unmarshal(row, &cols); err != nil || cols == nil {
			return nil, fmt.Errorf("%w: row %d is not a list", ErrMalformedProducts, i)
		}
		if len(cols) < productColumns {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrMalformedProducts, i, len(cols))
		}

		var fields [productColumns]string
		for j := range productColumns {
			if err := json.Unmarshal(cols[j], &fields[j]); err != nil || bytes.Equal(bytes.TrimSpace(cols[j]), []byte("null")) {
				return nil, fmt.Errorf("%w: row %d column %d is not a string", ErrMalformedProducts, i, j)
			}
		}

		products = append(products, models.ProductRecord{
			ProductName: fields[0],
			ProductID:   fields[1],
			Version:     fields[2],
			Arch:        fields[3],
			Status:      fields[4],
		})
	}

	return products, nil
}

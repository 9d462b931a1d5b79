// Package pubchem looks up compound properties by CAS number through
// the PubChem PUG REST API. Lookups are best-effort enrichment; callers
// tolerate failure.
package pubchem

import (
	"context"
	"fmt"
	"net/http"
	"time"

	resty "github.com/go-resty/resty/v2"
)

// Compound is the subset of PubChem properties the inventory records
type Compound struct {
	Name    string
	Formula string
}

type property struct {
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
}

type propertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		client: resty.New().
			SetTimeout(5 * time.Second).
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// LookupCAS fetches name and molecular formula for a CAS number
func (c *Client) LookupCAS(ctx context.Context, cas string) (*Compound, error) {
	propResp := &propertyResponse{}
	res, err := c.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"cas":   cas,
			"props": "Title,MolecularFormula,IUPACName",
		}).
		SetResult(propResp).
		Get("/rest/pug/compound/name/{cas}/property/{props}/JSON")
	if err != nil {
		return nil, fmt.Errorf("pubchem request: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("pubchem property query failed: status %d", res.StatusCode())
	}
	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, fmt.Errorf("pubchem returned no properties for %q", cas)
	}

	propData := propResp.PropertyTable.Properties[0]
	name := propData.Title
	if name == "" {
		name = propData.IUPACName
	}

	return &Compound{
		Name:    name,
		Formula: propData.MolecularFormula,
	}, nil
}

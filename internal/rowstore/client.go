// Package rowstore implementa el cliente HTTP del almacén de filas remoto
// (un servicio estilo PostgREST/Supabase). Toda la persistencia del sitio
// vive ahí; este proceso solo mantiene cachés en memoria.
package rowstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient crea un cliente autenticado contra el endpoint REST del almacén.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Query describe los parámetros de lectura de una tabla.
type Query struct {
	Select  string            // columnas (con expansiones embebidas), default "*"
	Order   string            // ej. "sort_order.asc"
	Filters map[string]string // columna -> predicado, ej. "is_active": "eq.true"
}

func (q Query) encode() string {
	v := url.Values{}
	sel := q.Select
	if sel == "" {
		sel = "*"
	}
	v.Set("select", sel)
	if q.Order != "" {
		v.Set("order", q.Order)
	}
	for col, pred := range q.Filters {
		v.Set(col, pred)
	}
	return v.Encode()
}

// Select lee filas de una tabla y las decodifica en dest (puntero a slice).
func (c *Client) Select(ctx context.Context, table string, q Query, dest any) error {
	body, err := c.do(ctx, http.MethodGet, c.tableURL(table, q.encode()), nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("error decoding rows from %s: %w", table, err)
	}
	return nil
}

// Insert inserta una fila (o un slice de filas) y decodifica la representación
// devuelta en dest. Si dest es un puntero a slice se decodifican todas las
// filas creadas; en caso contrario, la primera.
func (c *Client) Insert(ctx context.Context, table string, row any, dest any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("error encoding row for %s: %w", table, err)
	}
	body, err := c.do(ctx, http.MethodPost, c.tableURL(table, ""), payload, "return=representation")
	if err != nil {
		return err
	}
	return decodeRows(table, body, dest)
}

// Update aplica un patch parcial a la fila con el id dado. Si el almacén no
// encuentra la fila devuelve ErrNotFound.
func (c *Client) Update(ctx context.Context, table, id string, patch any, dest any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("error encoding patch for %s: %w", table, err)
	}
	body, err := c.do(ctx, http.MethodPatch, c.idURL(table, id), payload, "return=representation")
	if err != nil {
		return err
	}
	return decodeRows(table, body, dest)
}

// Delete elimina la fila con el id dado. Borrar un id inexistente es un
// éxito sin efecto, igual que en el almacén.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.idURL(table, id), nil, "")
	return err
}

func (c *Client) tableURL(table, rawQuery string) string {
	u := c.baseURL + "/" + table
	if rawQuery != "" {
		u += "?" + rawQuery
	}
	return u
}

func (c *Client) idURL(table, id string) string {
	v := url.Values{}
	v.Set("id", "eq."+id)
	return c.baseURL + "/" + table + "?" + v.Encode()
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte, prefer string) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("error building row store request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling row store: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading row store response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	return nil, classifyError(resp.StatusCode, body)
}

func classifyError(status int, body []byte) error {
	serr := &StoreError{StatusCode: status}
	if err := json.Unmarshal(body, serr); err != nil || serr.Message == "" {
		serr.Message = strings.TrimSpace(string(body))
		if serr.Message == "" {
			serr.Message = http.StatusText(status)
		}
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, serr.Message)
	case serr.Code == "42P01" || strings.Contains(serr.Message, "does not exist"):
		return fmt.Errorf("%w: %s", ErrMissingRelation, serr.Message)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, serr.Message)
	}
	return serr
}

// decodeRows decodifica la respuesta del almacén, que siempre es un arreglo
// JSON. Una respuesta vacía para una escritura dirigida a una fila concreta
// significa que la fila no existe.
func decodeRows(table string, body []byte, dest any) error {
	if dest == nil {
		return nil
	}
	rv := reflect.ValueOf(dest)
	if rv.Kind() == reflect.Pointer && rv.Elem().Kind() == reflect.Slice {
		if err := json.Unmarshal(body, dest); err != nil {
			return fmt.Errorf("error decoding rows from %s: %w", table, err)
		}
		return nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return fmt.Errorf("error decoding rows from %s: %w", table, err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w in %s", ErrNotFound, table)
	}
	if err := json.Unmarshal(rows[0], dest); err != nil {
		return fmt.Errorf("error decoding row from %s: %w", table, err)
	}
	return nil
}

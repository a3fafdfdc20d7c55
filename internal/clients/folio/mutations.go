package folio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/bobmcallan/folio/internal/models"
)

// AddAsset registers a new asset in the portfolio.
func (c *Client) AddAsset(ctx context.Context, asset *models.SearchResult) error {
	return c.postMutation(ctx, c.portfolioPath("/add_asset"), asset)
}

// AddTransaction records a buy or sell against an asset.
func (c *Client) AddTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error {
	path := c.portfolioPath("/assets/%s/add_transaction", url.PathEscape(symbol))
	return c.postMutation(ctx, path, tx)
}

// DeleteAsset removes an asset and all its transactions.
func (c *Client) DeleteAsset(ctx context.Context, symbol string) error {
	path := c.portfolioPath("/assets/%s/delete", url.PathEscape(symbol))
	return c.postMutation(ctx, path, nil)
}

// DeleteTransaction removes the transaction matching the row's date,
// type, quantity and price.
func (c *Client) DeleteTransaction(ctx context.Context, symbol string, tx *models.TransactionRow) error {
	path := c.portfolioPath("/assets/%s/transactions/delete", url.PathEscape(symbol))
	return c.postMutation(ctx, path, tx)
}

// DeletePortfolio removes the whole portfolio.
func (c *Client) DeletePortfolio(ctx context.Context) error {
	return c.postMutation(ctx, c.portfolioPath("/delete"), nil)
}

// ImportTransactions uploads a CSV of transactions for an asset as a
// multipart form with a single "file" part.
func (c *Client) ImportTransactions(ctx context.Context, symbol string, filename string, r io.Reader) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	path := c.portfolioPath("/assets/%s/import_csv", url.PathEscape(symbol))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", path).Str("file", filename).Msg("folio CSV import")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	var mu mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&mu); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !mu.Success {
		reason := mu.Error
		if reason == "" {
			reason = "unknown error"
		}
		return &MutationError{Endpoint: path, Reason: reason}
	}
	return nil
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

// apiClient минимальный клиент REST API заметок
type apiClient struct {
	baseURL string
	http    *http.Client
}

func newAPIClient() *apiClient {
	return &apiClient{
		baseURL: strings.TrimRight(address, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do выполняет запрос и возвращает тело ответа. Статус вне 2xx считается ошибкой,
// тело ответа при этом все равно возвращается для вывода.
func (c *apiClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequest: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return respBody, fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	return respBody, nil
}

// notePath путь к заметке. ID экранируется, чтобы аргумент не менял путь запроса
func notePath(id string) string {
	return "/api/v1/notes/" + url.PathEscape(id)
}

// run выполняет запрос и печатает ответ сервера в отформатированном виде
func run(cmd *cobra.Command, method, path string, payload any) error {
	body, err := newAPIClient().do(cmd.Context(), method, path, payload)
	if len(body) > 0 {
		printJSON(cmd.OutOrStdout(), body)
	}
	return err
}

func printJSON(w io.Writer, body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Fprintln(w, string(body))
		return
	}
	fmt.Fprintln(w, out.String())
}

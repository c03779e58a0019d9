package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type reqConfig struct {
	Method  string
	Url     string
	Headers []string
	Body    []byte
}

var httpClient = &http.Client{Timeout: 90 * time.Second}

func request[T any](ctx context.Context, config reqConfig, expectedResCode int) (*T, error) {
	req, err := http.NewRequestWithContext(ctx, config.Method, config.Url, bytes.NewBuffer(config.Body))

	if err != nil {
		return nil, err
	}

	for i := 0; i < len(config.Headers); i++ {
		headerKV := strings.Split(config.Headers[i], ":")
		req.Header.Add(headerKV[0], headerKV[1])
	}

	resp, err := httpClient.Do(req)

	if err != nil {
		return nil, err
	} else if resp.StatusCode != expectedResCode {
		defer resp.Body.Close()
		return nil, fmt.Errorf("unexpected response status code %d", resp.StatusCode)
	}

	body, err := read(resp.Body)

	if err != nil {
		return nil, err
	}

	return readJSON[T](body)
}

func read(reader io.ReadCloser) ([]byte, error) {
	var err error

	defer func() {
		err = reader.Close()
		if err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	var content []byte
	content, err = io.ReadAll(reader)

	if err != nil {
		return nil, err
	} else if len(content) == 0 {
		return nil, errors.New("no reader content error")
	}

	return content, nil
}

func readJSON[T any](content []byte) (*T, error) {
	var t *T
	err := json.Unmarshal(content, &t)

	if err != nil {
		return nil, err
	}

	return t, nil
}

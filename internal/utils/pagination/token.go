package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const idTokenPrefix = "id"

// EncodeIDToken creates a base64 encoded keyset token pointing after the given row ID.
func EncodeIDToken(lastID int64) string {
	return EncodeMultiFieldToken(idTokenPrefix, strconv.FormatInt(lastID, 10))
}

// DecodeIDToken parses a token produced by EncodeIDToken back into the row ID.
func DecodeIDToken(token string) (int64, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return 0, err
	}
	if len(parts) != 2 || parts[0] != idTokenPrefix {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (id parse): %w", err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid pagination token format (id must be positive)")
	}
	return id, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package keychain stores neuPrint tokens in the OS credential store.
//
// Tokens are keyed by the normalized server URL so one machine can hold
// credentials for several neuPrint deployments.
package keychain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our namespace in the credential store.
const ServiceName = "neuprint"

const keyPrefix = "token:"

var (
	// ErrTokenNotFound is returned when no token is stored for a server.
	ErrTokenNotFound = errors.New("no token stored for server")
	// ErrEmptyToken is returned when saving an empty token or when the stored item is empty.
	ErrEmptyToken = errors.New("empty token")
	// ErrEmptyServer is returned when the server key is empty.
	ErrEmptyServer = errors.New("empty server")
)

// Manager provides thread-safe access to stored tokens.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager opens the OS keyring. The backend is picked by keyring itself
// (macOS Keychain, Windows Credential Manager, Secret Service, KWallet, pass).
func NewManager() (*Manager, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName:              ServiceName,
		KeychainTrustApplication: true,
		PassPrefix:               ServiceName,
		WinCredPrefix:            ServiceName,
		LibSecretCollectionName:  ServiceName,
		KWalletAppID:             ServiceName,
		KWalletFolder:            ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return NewManagerWithKeyring(ring), nil
}

// NewManagerWithKeyring wraps an already opened keyring.
func NewManagerWithKeyring(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// SaveToken stores token for server, replacing any previous value.
func (m *Manager) SaveToken(server, token string) error {
	if server == "" {
		return ErrEmptyServer
	}
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.ring.Set(keyring.Item{
		Key:         itemKey(server),
		Data:        []byte(token),
		Label:       "neuPrint token for " + server,
		Description: "neuPrint application credentials",
	})
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// Token returns the token stored for server.
func (m *Manager) Token(server string) (string, error) {
	if server == "" {
		return "", ErrEmptyServer
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	item, err := m.ring.Get(itemKey(server))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", fmt.Errorf("%w: %s", ErrTokenNotFound, server)
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	if len(item.Data) == 0 {
		return "", ErrEmptyToken
	}
	return string(item.Data), nil
}

// DeleteToken removes the token stored for server. Removing a token that is
// not there is not an error.
func (m *Manager) DeleteToken(server string) error {
	if server == "" {
		return ErrEmptyServer
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.ring.Remove(itemKey(server))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}

// Servers lists the servers that have a stored token.
func (m *Manager) Servers() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys, err := m.ring.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}

	servers := make([]string, 0, len(keys))
	for _, k := range keys {
		if len(k) > len(keyPrefix) && k[:len(keyPrefix)] == keyPrefix {
			servers = append(servers, k[len(keyPrefix):])
		}
	}
	return servers, nil
}

func itemKey(server string) string {
	return keyPrefix + server
}

// Package ssh reads host aliases out of an ssh client config file for the TUI
package ssh

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kevinburke/ssh_config"
)

type Host struct {
	// Alias is the first pattern of a `Host` line, passed to the editor as-is.
	Alias string
	// User is the username for the SSH connection.
	User string
	// Hostname is the actual remote hostname to connect to.
	Hostname string
	// Port is the port number for the SSH connection.
	Port string
}

// Destination summarises the resolved connection details as user@hostname:port.
// It is empty when the config has nothing beyond the alias.
func (h *Host) Destination() string {
	if h.Hostname == "" && h.User == "" && h.Port == "" {
		return ""
	}

	hostname := h.Hostname
	if hostname == "" {
		hostname = h.Alias
	}

	var b strings.Builder
	if h.User != "" {
		b.WriteString(h.User)
		b.WriteByte('@')
	}

	b.WriteString(hostname)

	if h.Port != "" {
		b.WriteByte(':')
		b.WriteString(h.Port)
	}

	return b.String()
}

// ScanAliases returns the alias of every `Host <alias>` line in file order.
// `Host *` lines are skipped, as are `Host` lines without a pattern.
func ScanAliases(r io.Reader) ([]string, error) {
	var aliases []string

	sc := bufio.NewScanner(r)
	// long ProxyCommand or comment lines must not stop the scan
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "Host" {
			continue
		}

		if strings.TrimSpace(line[len("Host"):]) == "*" {
			continue
		}

		aliases = append(aliases, fields[1])
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return aliases, nil
}

// LoadHosts reads the ssh config at path. A missing file yields no hosts and no error.
func LoadHosts(path string) ([]*Host, error) {
	fp, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("ssh config not found", "path", fp)
			return nil, nil
		}

		return nil, fmt.Errorf("could not read ssh config file %s: %w", fp, err)
	}

	aliases, err := ScanAliases(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not read ssh config file %s: %w", fp, err)
	}

	// details are cosmetic, a config the decoder rejects still lists its aliases
	cfg, err := ssh_config.Decode(bytes.NewReader(data))
	if err != nil {
		log.Debug("could not decode ssh config, skipping host details", "path", fp, "err", err)
		cfg = nil
	}

	hosts := make([]*Host, 0, len(aliases))
	for _, alias := range aliases {
		hosts = append(hosts, newHost(cfg, alias))
	}

	log.Debug("loaded ssh hosts", "path", fp, "count", len(hosts))

	return hosts, nil
}

func newHost(cfg *ssh_config.Config, alias string) *Host {
	h := &Host{Alias: alias}
	if cfg == nil {
		return h
	}

	h.User = getOptVal(cfg, alias, "User")
	h.Hostname = getOptVal(cfg, alias, "HostName")
	h.Port = getOptVal(cfg, alias, "Port")

	return h
}

func getOptVal(cfg *ssh_config.Config, alias, opt string) string {
	val, err := cfg.Get(alias, opt)
	if err != nil {
		log.Debug("could not resolve ssh option", "host", alias, "option", opt, "err", err)
		return ""
	}

	return val
}

func expandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}

	return filepath.Join(home, p[2:]), nil
}

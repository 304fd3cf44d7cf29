package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

type dsnSetting struct {
	key, value string
}

// pgDSN is a libpq key=value connection string in its original key order.
type pgDSN []dsnSetting

// parseDSN accepts either a postgres:// URL or a key=value string. URLs are
// converted with pq.ParseURL so both forms share one representation.
func parseDSN(raw string) (pgDSN, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://") {
		kv, err := pq.ParseURL(raw)
		if err != nil {
			return nil, err
		}
		raw = kv
	}

	var out pgDSN
	rest := raw
	for {
		rest = strings.TrimLeft(rest, " \t\n")
		if rest == "" {
			return out, nil
		}
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed dsn near %q", rest)
		}
		key := strings.TrimSpace(rest[:eq])
		rest = strings.TrimLeft(rest[eq+1:], " \t")

		var value strings.Builder
		if strings.HasPrefix(rest, "'") {
			i := 1
			for ; i < len(rest) && rest[i] != '\''; i++ {
				if rest[i] == '\\' && i+1 < len(rest) {
					i++
				}
				value.WriteByte(rest[i])
			}
			if i == len(rest) {
				return nil, errors.New("unterminated quoted value in dsn")
			}
			rest = rest[i+1:]
		} else {
			end := strings.IndexAny(rest, " \t\n")
			if end < 0 {
				end = len(rest)
			}
			value.WriteString(rest[:end])
			rest = rest[end:]
		}
		out = append(out, dsnSetting{key: key, value: value.String()})
	}
}

func (d pgDSN) get(key string) string {
	for _, s := range d {
		if s.key == key {
			return s.value
		}
	}
	return ""
}

func (d pgDSN) String() string {
	parts := make([]string, len(d))
	for i, s := range d {
		parts[i] = s.key + "=" + quoteDSNValue(s.value)
	}
	return strings.Join(parts, " ")
}

func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// dsnWithApplicationName tags connections so they show up by name in
// pg_stat_activity. The input is returned untouched when it already names
// an application or cannot be parsed.
func dsnWithApplicationName(raw, applicationName string) string {
	applicationName = strings.TrimSpace(applicationName)
	if applicationName == "" {
		return raw
	}
	dsn, err := parseDSN(raw)
	if err != nil || len(dsn) == 0 || dsn.get("application_name") != "" {
		return raw
	}
	return append(dsn, dsnSetting{key: "application_name", value: applicationName}).String()
}

func dsnDatabase(raw string) string {
	dsn, err := parseDSN(raw)
	if err != nil {
		return ""
	}
	return dsn.get("dbname")
}

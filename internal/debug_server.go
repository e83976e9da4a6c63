package internal

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectRow is one ledger entry rendered in the debug page.
type InspectRow struct {
	Key    string
	Start  string
	End    string
	Owner  string
	Label  string
	Status string
}

type RowMapper func(key string, val []byte) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  map[string]any
}

// StartDebugServer exposes a read-only HTML view over the raw badger
// ledger. Ops-only surface: it binds on all interfaces and carries no
// auth, never expose it past the LAN.
func StartDebugServer(db *badger.DB, port int, endpoint string, mapper RowMapper, statsProvider StatsProvider) {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	if mapper == nil {
		mapper = DefaultMapper
	}

	mux.HandleFunc(endpoint, func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "resv:"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}

		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		_ = db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				_ = item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				})
			}
			return nil
		})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	go func() {
		_ = http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
	}()
}

// DefaultMapper decodes what it can from the key alone. Primary keys
// look like "resv:{start_unixnano_padded}:{uuid}".
func DefaultMapper(key string, val []byte) InspectRow {
	parts := strings.Split(key, ":")
	row := InspectRow{
		Key:    key,
		Start:  "--:--:--",
		End:    "--:--:--",
		Owner:  "--------",
		Label:  "Size: " + strconv.Itoa(len(val)) + " bytes",
		Status: "RAW",
	}

	if len(parts) == 3 && parts[0] == "resv" {
		if tsNano, err := strconv.ParseInt(parts[1], 10, 64); err == nil {
			row.Start = time.Unix(0, tsNano).UTC().Format("Jan 02 15:04:05")
		}
		row.Owner = parts[2]
		if len(row.Owner) > 8 {
			row.Owner = row.Owner[:8]
		}
	}
	return row
}

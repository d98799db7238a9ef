package lib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/blevesearch/bleve"
	"github.com/boltdb/bolt"
	vlib "github.com/mcuadros/go-version"
	"github.com/xuri/excelize/v2"
)

// LCSC Part	First Category	Second Category	MFR.Part	Package	Solder Joint	Manufacturer	Library Type	Description	Datasheet	Price	Stock
// C25725	Resistors	Resistor Networks & Arrays	4D02WGJ0103TCE	0402_x4	8	Uniroyal Elec	Basic	Resistor Networks & Arrays 10KOhms ±5% 1/16W 0402_x4 RoHS	https://datasheet.lcsc.com/szlcsc/Uniroyal-Elec-4D02WGJ0103TCE_C25725.pdf	1-199:0.006956522,200-:0.002717391	79847

const SchemaVersion = "1.1.0"

var (
	COMPONENTS_BKT = []byte("components")
	PRESETS_BKT    = []byte("presets")
	META_BKT       = []byte("meta")

	schemaKey = []byte("schema")
)

const (
	dbName    = "edabuddy.db"
	indexName = "edabuddy.index"

	// components per bolt transaction
	importBatch = 2000
)

type Library struct {
	root  string
	db    *bolt.DB
	index bleve.Index
}

type LibraryComponent struct {
	ID             string
	FirstCategory  string
	SecondCategory string
	MFRPart        string
	Package        string
	SolderJoint    string
	Manufacturer   string
	LibraryType    string
	Description    string
}

func (c *LibraryComponent) Basic() bool {
	return strings.EqualFold(c.LibraryType, "Basic")
}

// Resistance reads the first "<value>Ohms" or "<value>Ω" token of the
// description, e.g. "10KOhms".
func (c *LibraryComponent) Resistance() (float64, bool) {
	for _, field := range strings.Fields(c.Description) {
		lower := strings.ToLower(field)
		if !strings.HasSuffix(lower, "ohm") && !strings.HasSuffix(lower, "ohms") &&
			!strings.HasSuffix(field, "Ω") {
			continue
		}

		value, err := ParseResistance(field)
		if err == nil && value > 0 {
			return value, true
		}
	}

	return 0, false
}

func NewDefaultLibrary() (*Library, error) {
	return NewLibrary(DefaultRoot())
}

// Create or open library from root
func NewLibrary(root string) (*Library, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create library root: %w", err)
	}

	db, err := bolt.Open(filepath.Join(root, dbName), 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{COMPONENTS_BKT, PRESETS_BKT, META_BKT} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}

		meta := tx.Bucket(META_BKT)
		stored := string(meta.Get(schemaKey))
		if stored == "" {
			return meta.Put(schemaKey, []byte(SchemaVersion))
		}
		if vlib.CompareSimple(stored, SchemaVersion) == 1 {
			return fmt.Errorf("%w: %s > %s", ErrSchemaTooNew, stored, SchemaVersion)
		}
		if stored != SchemaVersion {
			return meta.Put(schemaKey, []byte(SchemaVersion))
		}

		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	var index bleve.Index
	ipath := filepath.Join(root, indexName)
	if Exists(ipath) {
		index, err = bleve.Open(ipath)
	} else {
		index, err = bleve.New(ipath, bleve.NewIndexMapping())
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open library index: %w", err)
	}

	return &Library{
		root:  root,
		db:    db,
		index: index,
	}, nil
}

func (l *Library) Root() string {
	return l.root
}

func (l *Library) Close() error {
	ierr := l.index.Close()
	if err := l.db.Close(); err != nil {
		return err
	}

	return ierr
}

// Import a library from a JLCPCB excel file
func (l *Library) Import(ctx context.Context, src string) (int, error) {
	f, err := excelize.OpenFile(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return 0, fmt.Errorf("%w: %s has no sheets", ErrInvalidArgument, src)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return 0, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	defer rows.Close()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	// the reader must be gone before rows and f are closed
	defer func() {
		cancel()
		<-done
	}()

	chcomponents := make(chan *LibraryComponent, 100)
	go func() {
		defer close(done)
		defer close(chcomponents)
		for rows.Next() {
			if ctx.Err() != nil {
				return
			}

			row, err := rows.Columns()
			if err != nil || len(row) < 9 {
				continue
			}

			// header
			if strings.HasPrefix(row[0], "LCSC") {
				continue
			}

			component := &LibraryComponent{
				ID:             row[0],
				FirstCategory:  row[1],
				SecondCategory: row[2],
				MFRPart:        row[3],
				Package:        row[4],
				SolderJoint:    row[5],
				Manufacturer:   row[6],
				LibraryType:    row[7],
				Description:    row[8],
			}

			select {
			case chcomponents <- component:
			case <-ctx.Done():
				return
			}
		}
	}()

	return l.store(ctx, chcomponents)
}

// Import the components streamed by the JLC client. The error channel is
// read once the component channel is closed.
func (l *Library) ImportBasic(ctx context.Context, components <-chan *LibraryComponent, errs <-chan error) (int, error) {
	n, err := l.store(ctx, components)
	if err != nil {
		go func() {
			for range components {
			}
		}()
		return n, err
	}

	if err, ok := <-errs; ok && err != nil {
		return n, err
	}

	return n, nil
}

// Do it this way to save memory: components are written and indexed in
// batches as they arrive.
func (l *Library) store(ctx context.Context, components <-chan *LibraryComponent) (int, error) {
	total := 0
	for {
		batch := make([]*LibraryComponent, 0, importBatch)
		for component := range components {
			batch = append(batch, component)
			if len(batch) == importBatch {
				break
			}
		}

		if len(batch) == 0 {
			return total, ctx.Err()
		}

		if err := ctx.Err(); err != nil {
			return total, err
		}

		if err := l.put(batch); err != nil {
			return total, err
		}

		total += len(batch)
		Logger().Info("library.import", "stored", total)
	}
}

func (l *Library) put(components []*LibraryComponent) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(COMPONENTS_BKT)
		for _, component := range components {
			bytes, err := Marshal(component)
			if err != nil {
				return err
			}

			if err := bkt.Put([]byte(component.ID), bytes); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store components: %w", err)
	}

	batch := l.index.NewBatch()
	for _, component := range components {
		if err := batch.Index(component.ID, *component); err != nil {
			return fmt.Errorf("failed to index %s: %w", component.ID, err)
		}
	}

	return l.index.Batch(batch)
}

func (l *Library) Count() int {
	n := 0
	l.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(COMPONENTS_BKT).Stats().KeyN
		return nil
	})

	return n
}

func (l *Library) Component(id string) (*LibraryComponent, error) {
	component := &LibraryComponent{}
	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(COMPONENTS_BKT).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: component %s", ErrNotFound, id)
		}

		return Unmarshal(data, component)
	})
	if err != nil {
		return nil, err
	}

	return component, nil
}

// Find library components, given a search string
func (l *Library) Find(text string, limit int) ([]*LibraryComponent, error) {
	request := bleve.NewSearchRequest(bleve.NewMatchQuery(text))
	if limit > 0 {
		request.Size = limit
	}

	result, err := l.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("failed to search library: %w", err)
	}

	components := []*LibraryComponent{}
	for _, hit := range result.Hits {
		component, err := l.Component(hit.ID)
		if err != nil {
			continue
		}
		components = append(components, component)
	}

	return components, nil
}

// FindResistor returns the resistors whose value is within 0.1% of ohms,
// optionally restricted to a package, basic parts first.
func (l *Library) FindResistor(ohms float64, pkg string) ([]*LibraryComponent, error) {
	components := []*LibraryComponent{}
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(COMPONENTS_BKT).ForEach(func(_, data []byte) error {
			component := &LibraryComponent{}
			if err := Unmarshal(data, component); err != nil {
				return err
			}

			if pkg != "" && !strings.HasPrefix(component.Package, pkg) {
				return nil
			}

			value, ok := component.Resistance()
			if !ok || relativeDiff(value, ohms) >= duplicateTolerance {
				return nil
			}

			components = append(components, component)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(components, func(i, j int) bool {
		if components[i].Basic() != components[j].Basic() {
			return components[i].Basic()
		}
		return components[i].ID < components[j].ID
	})

	return components, nil
}

func (l *Library) SavePreset(name string, config EnumerationConfig) error {
	if name == "" {
		return fmt.Errorf("%w: empty preset name", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	bytes, err := Marshal(config)
	if err != nil {
		return err
	}

	return l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(PRESETS_BKT).Put([]byte(name), bytes)
	})
}

func (l *Library) Preset(name string) (EnumerationConfig, error) {
	config := EnumerationConfig{}
	err := l.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(PRESETS_BKT).Get([]byte(name))
		if data == nil {
			return fmt.Errorf("%w: preset %s", ErrNotFound, name)
		}

		return Unmarshal(data, &config)
	})

	return config, err
}

// Presets returns the saved preset names in key order.
func (l *Library) Presets() []string {
	names := []string{}
	l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(PRESETS_BKT).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})

	return names
}

func (l *Library) DeletePreset(name string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		bkt := tx.Bucket(PRESETS_BKT)
		if bkt.Get([]byte(name)) == nil {
			return fmt.Errorf("%w: preset %s", ErrNotFound, name)
		}

		return bkt.Delete([]byte(name))
	})
}

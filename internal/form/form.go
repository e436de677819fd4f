// Package form wires user input events to the item store and catalog
// lookup, and republishes derived totals after every mutation. One
// orchestrator edits one document; every entry point runs a full
// mutate → recompute → publish cycle to completion before the next
// event is processed.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pharmadesk/api/internal/catalog"
	"github.com/pharmadesk/api/internal/document"
	"github.com/pharmadesk/api/internal/enum"
	"github.com/pharmadesk/api/internal/totals"
)

// Errors returned by the orchestrator.
var (
	ErrUnknownKind       = errors.New("unknown document kind")
	ErrNilCatalog        = errors.New("catalog index is required")
	ErrUnknownAdjustment = errors.New("unknown adjustment field")
)

// Sink receives the complete, already-consistent document on explicit
// submit and returns the receipt ID the boundary assigned.
type Sink interface {
	Submit(ctx context.Context, doc document.Document) (string, error)
}

// Lookup is the dropdown state of one line item's product search.
type Lookup struct {
	State   string          `json:"state"`
	Query   string          `json:"query"`
	Results []catalog.Entry `json:"results,omitempty"`
}

// Snapshot is the observable form state republished after every cycle.
type Snapshot struct {
	Kind        string               `json:"kind"`
	Header      document.Header      `json:"header"`
	Items       []document.LineItem  `json:"items"`
	Adjustments document.Adjustments `json:"adjustments"`
	Totals      document.Totals      `json:"totals"`
	Lookups     []Lookup             `json:"lookups"`
	CanRemove   bool                 `json:"can_remove"`
}

// Config is the injected initial state of an orchestrator. Initial, when
// set, replaces the blank document wholesale (editing an existing
// document); otherwise editing starts from a fresh document of Kind.
type Config struct {
	Kind    string
	Catalog *catalog.Index
	Initial *document.Document
	Publish func(Snapshot)
}

// Orchestrator owns one document being edited. Not safe for concurrent
// use: input events arrive one at a time, in order.
type Orchestrator struct {
	kind        string
	catalog     *catalog.Index
	header      document.Header
	store       *document.ItemStore
	adjustments document.Adjustments
	totals      document.Totals
	lookups     []Lookup
	publish     func(Snapshot)
}

// New creates an orchestrator, recomputes the derived fields of its
// starting document, and publishes the initial snapshot.
func New(cfg Config) (*Orchestrator, error) {
	if !enum.IsDocKind(cfg.Kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}

	doc := document.New(cfg.Kind)
	if cfg.Initial != nil {
		doc = *cfg.Initial
		doc.Kind = cfg.Kind
	}

	publish := cfg.Publish
	if publish == nil {
		publish = func(Snapshot) {}
	}

	o := &Orchestrator{
		kind:        cfg.Kind,
		catalog:     cfg.Catalog,
		header:      doc.Header,
		store:       document.NewItemStore(doc.Items),
		adjustments: doc.Adjustments,
		publish:     publish,
	}
	o.lookups = make([]Lookup, o.store.Len())
	for i := range o.lookups {
		o.lookups[i] = Lookup{State: enum.LookupIdle}
	}

	o.recompute()
	return o, nil
}

// AddItem appends a blank line item.
func (o *Orchestrator) AddItem() {
	o.store.Append()
	o.lookups = append(o.lookups, Lookup{State: enum.LookupIdle})
	o.recompute()
}

// RemoveItem deletes the line item at index i. Removing the last
// remaining item is a no-op; callers should read CanRemove to disable
// the affordance instead of relying on an error.
func (o *Orchestrator) RemoveItem(i int) error {
	_, err := o.store.RemoveAt(i)
	switch {
	case errors.Is(err, document.ErrLastItem):
		// Refused, list untouched.
	case err != nil:
		return err
	default:
		o.lookups = append(o.lookups[:i], o.lookups[i+1:]...)
	}
	o.recompute()
	return nil
}

// EditItemField replaces one raw field of one line item. Editing the
// display name also drives the lookup dropdown: a non-empty value opens
// a live-filtered search, an empty one returns the row to idle. Typing
// over a selected product re-enters the search without undoing the
// already-applied patch; the stale product binding stands until the user
// selects again.
func (o *Orchestrator) EditItemField(i int, field, raw string) error {
	if _, err := o.store.Update(i, field, raw); err != nil {
		return err
	}
	if field == enum.ItemFieldDisplayName {
		if raw == "" {
			o.lookups[i] = Lookup{State: enum.LookupIdle}
		} else {
			o.lookups[i] = Lookup{State: enum.LookupSearching, Query: raw}
		}
	}
	o.recompute()
	return nil
}

// SelectCatalogEntry applies a catalog selection to the line item at
// index i as one atomic patch and clears the active search query,
// collapsing the dropdown, within the same cycle.
func (o *Orchestrator) SelectCatalogEntry(i int, entry catalog.Entry) error {
	if _, err := o.store.ApplyPatch(i, catalog.Select(entry)); err != nil {
		return err
	}
	o.lookups[i] = Lookup{State: enum.LookupSelected}
	o.recompute()
	return nil
}

// EditAdjustment replaces one order-level adjustment with the coerced
// value of raw; unparseable input counts as zero.
func (o *Orchestrator) EditAdjustment(field, raw string) error {
	switch field {
	case enum.AdjustmentFieldTaxRate:
		o.adjustments.TaxRatePercent = parseDecimal(raw)
	case enum.AdjustmentFieldShippingCost:
		o.adjustments.ShippingCost = parseDecimal(raw)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAdjustment, field)
	}
	o.recompute()
	return nil
}

// SetHeader replaces the pass-through header wholesale. Header fields
// never feed the totals, but the cycle still recomputes and republishes.
func (o *Orchestrator) SetHeader(h document.Header) {
	o.header = h
	o.recompute()
}

// CanRemove reports whether a line item may currently be removed.
func (o *Orchestrator) CanRemove() bool { return o.store.Len() > 1 }

// Snapshot returns the current observable state.
func (o *Orchestrator) Snapshot() Snapshot {
	lookups := make([]Lookup, len(o.lookups))
	for i, l := range o.lookups {
		if l.State == enum.LookupSearching {
			l.Results = o.catalog.Search(l.Query)
		}
		lookups[i] = l
	}
	return Snapshot{
		Kind:        o.kind,
		Header:      o.header,
		Items:       o.store.Items(),
		Adjustments: o.adjustments,
		Totals:      o.totals,
		Lookups:     lookups,
		CanRemove:   o.CanRemove(),
	}
}

// Document assembles the complete document in its current state.
func (o *Orchestrator) Document() document.Document {
	return document.Document{
		Kind:        o.kind,
		Header:      o.header,
		Items:       o.store.Items(),
		Adjustments: o.adjustments,
		Totals:      o.totals,
	}
}

// Submit hands the consistent document to the submission sink and
// returns it with the receipt ID the sink assigned. The orchestrator
// performs no network I/O itself.
func (o *Orchestrator) Submit(ctx context.Context, sink Sink) (document.Document, error) {
	doc := o.Document()
	id, err := sink.Submit(ctx, doc)
	if err != nil {
		return document.Document{}, fmt.Errorf("submit %s: %w", o.kind, err)
	}
	doc.ID = id
	return doc, nil
}

func parseDecimal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// recompute re-derives every line total and the order totals from
// scratch, then publishes the snapshot. Always a full pass: no
// incremental updates to miss.
func (o *Orchestrator) recompute() {
	items := o.store.Items()
	for i := range items {
		_ = o.store.SetLineTotal(i, totals.LineTotal(o.kind, items[i]))
	}
	o.totals = totals.Compute(o.kind, o.store.Items(), o.adjustments)
	o.publish(o.Snapshot())
}

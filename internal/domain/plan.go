package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// ArchiveDirName is the folder under the gallery root that holds images of
// items no longer active.
const ArchiveDirName = "Sold"

// StagingDirName is the default output folder name. Any directory with this
// name is skipped while scanning so generated output is never reprocessed.
const StagingDirName = "gallery-output"

// ImageAsset is an image file discovered under the gallery root
type ImageAsset struct {
	Path      string // absolute source path
	Filename  string
	Key       Optional[ItemKey]
	Duplicate bool
	Managed   bool
}

// NewImageAsset classifies the file at path
func NewImageAsset(path string, prefixes []string) ImageAsset {
	name := filepath.Base(path)
	c := Classify(name, prefixes)
	return ImageAsset{
		Path:      path,
		Filename:  name,
		Key:       c.Key,
		Duplicate: c.Duplicate,
		Managed:   c.Managed,
	}
}

// ActionKind is the reconciliation decision for one asset
type ActionKind int

const (
	ActionKeep ActionKind = iota
	ActionDelete
	ActionArchive
	ActionSkip
)

func (k ActionKind) String() string {
	switch k {
	case ActionKeep:
		return "keep"
	case ActionDelete:
		return "delete"
	case ActionArchive:
		return "archive"
	case ActionSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// PlannedAction is one decision of a reconciliation plan.
// Target is only set for ActionArchive.
type PlannedAction struct {
	Kind   ActionKind
	Asset  ImageAsset
	Target string
}

// ReconcileStats counts the decisions of a plan
type ReconcileStats struct {
	Deleted int
	Moved   int
	Skipped int
	Kept    int
}

// Mutations returns how many actions touch the filesystem
func (s ReconcileStats) Mutations() int {
	return s.Deleted + s.Moved
}

// ReconcilePlan is the full set of decisions for a gallery root
type ReconcilePlan struct {
	Root      string
	Actions   []PlannedAction
	Survivors []ImageAsset
	Stats     ReconcileStats
}

// SortAssets orders assets by filename descending, case-insensitive, with the
// path as tie-break so equal names keep a stable order.
func SortAssets(assets []ImageAsset) {
	sort.SliceStable(assets, func(i, j int) bool {
		a, b := strings.ToUpper(assets[i].Filename), strings.ToUpper(assets[j].Filename)
		if a != b {
			return a > b
		}
		return assets[i].Path < assets[j].Path
	})
}

// ArchivePath returns where an asset is moved when its item is sold
func ArchivePath(root string, asset ImageAsset) string {
	return filepath.Join(root, ArchiveDirName, asset.Filename)
}

// PlanReconciliation decides, without touching the filesystem, what happens
// to every asset: foreign files are skipped, duplicate variants deleted,
// images of inactive items archived and the rest kept as survivors.
func PlanReconciliation(root string, assets []ImageAsset, active KeySet) ReconcilePlan {
	sorted := make([]ImageAsset, len(assets))
	copy(sorted, assets)
	SortAssets(sorted)

	plan := ReconcilePlan{
		Root:    root,
		Actions: make([]PlannedAction, 0, len(sorted)),
	}

	for _, asset := range sorted {
		action := PlannedAction{Asset: asset}

		key, hasKey := asset.Key.Get()
		switch {
		case !asset.Managed:
			action.Kind = ActionSkip
			plan.Stats.Skipped++
		case asset.Duplicate:
			action.Kind = ActionDelete
			plan.Stats.Deleted++
		case !hasKey || !active.Has(key):
			action.Kind = ActionArchive
			action.Target = ArchivePath(root, asset)
			plan.Stats.Moved++
		default:
			action.Kind = ActionKeep
			plan.Stats.Kept++
			plan.Survivors = append(plan.Survivors, asset)
		}

		plan.Actions = append(plan.Actions, action)
	}

	return plan
}

// Pending returns the actions that mutate the filesystem, in plan order
func (p ReconcilePlan) Pending() []PlannedAction {
	var pending []PlannedAction
	for _, a := range p.Actions {
		if a.Kind == ActionDelete || a.Kind == ActionArchive {
			pending = append(pending, a)
		}
	}
	return pending
}

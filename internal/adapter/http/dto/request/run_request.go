package request

// RunRequest is the (optional) body of a pipeline trigger. DryRun executes
// every transform and the quality gate without publishing the snapshot, the
// equivalent of a rehearsal build.
type RunRequest struct {
	DryRun bool `json:"dry_run"`
}

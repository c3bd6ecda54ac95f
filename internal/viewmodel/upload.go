package viewmodel

import (
	"sync"

	"github.com/yashdubey2004/AI-law/internal/appctx"
)

// UploadDialog runs Closed -> Open -> Closed. No bytes move in the current
// behaviour; ConfirmUpload closes the dialog and queues a notification. A
// real transfer backend slots in behind Confirm with RemoteFailure-shaped
// errors surfaced through the same notification path.
type UploadDialog struct {
	mu   sync.Mutex
	open bool
	app  *appctx.Context
}

func NewUploadDialog(app *appctx.Context) *UploadDialog {
	return &UploadDialog{app: app}
}

func (d *UploadDialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
}

func (d *UploadDialog) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = false
}

func (d *UploadDialog) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// ConfirmUpload closes the dialog and tells the user the document is being
// analyzed. A confirm on an already-closed dialog is ignored.
func (d *UploadDialog) ConfirmUpload() {
	d.mu.Lock()
	if !d.open {
		d.mu.Unlock()
		return
	}
	d.open = false
	d.mu.Unlock()
	d.app.Notify("Document uploaded", "Your document is being analyzed...", appctx.SeverityInfo)
}

package viewmodel

import (
	"fmt"
	"sync"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/routing"
)

// DashboardViewModel backs the dashboard page: the document locker, the
// quick-search box, and the news ticker.
type DashboardViewModel struct {
	mu        sync.Mutex
	documents []catalog.LockerDocument
	ticker    []string
	app       *appctx.Context

	Upload *UploadDialog
}

func NewDashboardViewModel(app *appctx.Context) *DashboardViewModel {
	return &DashboardViewModel{
		documents: catalog.SeedDocuments(),
		ticker:    catalog.SeedTicker(),
		app:       app,
		Upload:    NewUploadDialog(app),
	}
}

func (vm *DashboardViewModel) Documents() []catalog.LockerDocument {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	out := make([]catalog.LockerDocument, len(vm.documents))
	copy(out, vm.documents)
	return out
}

func (vm *DashboardViewModel) Ticker() []string {
	out := make([]string, len(vm.ticker))
	copy(out, vm.ticker)
	return out
}

// ViewAnalysis queues a notification and returns the path to navigate to.
func (vm *DashboardViewModel) ViewAnalysis(docName string) string {
	vm.app.Notify("Opening analysis", fmt.Sprintf("Loading analysis for %s", docName), appctx.SeverityInfo)
	return routing.PathDocumentAnalysis
}

// Delete tells the user the document was removed. The locker contents are
// fixtures and are rendered verbatim, so only the notification is emitted.
func (vm *DashboardViewModel) Delete(docName string) {
	vm.app.Notify("Document deleted", fmt.Sprintf("%s has been removed from your locker", docName), appctx.SeverityError)
}

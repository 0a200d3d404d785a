package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
	"github.com/guttosm/ptaxfolio/internal/service"
)

const statementFixture = `Trades,Header,DataDiscriminator,Asset Category,Currency,Symbol,Date/Time,Quantity,T. Price,C. Price,Proceeds,Comm/Fee,Basis,Realized P/L,MTM P/L,Code
Trades,Data,Order,Stocks,USD,VWRA,"2024-01-05, 10:30:00",2,115.94,116.00,-231.88,-1.91,233.79,0,0.12,O
`

const emptyFixture = `Statement,Header,Field Name,Field Value
Statement,Data,Period,"January 1, 2024 - December 31, 2024"
`

type recordingService struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (r *recordingService) Aggregate(_ context.Context, _ []models.Trade, _ map[string]string) ([]models.Holding, error) {
	return nil, nil
}

func (r *recordingService) BuildReport(_ context.Context, _ []models.Trade, _ map[string]string) (*models.Report, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return &models.Report{Year: 2024, TotalTrades: 1, Holdings: []models.Holding{}}, nil
}

var _ service.HoldingsService = (*recordingService)(nil)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", statementFixture)
	writeFile(t, dir, "b.csv", statementFixture)
	writeFile(t, dir, "notes.txt", "ignored")

	svc := &recordingService{}
	if err := ProcessDirectory(context.Background(), dir, svc, 2); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if svc.calls != 2 {
		t.Fatalf("BuildReport calls: want 2, got %d", svc.calls)
	}
}

func TestProcessDirectory_SkipsEmptyStatements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.csv", emptyFixture)
	writeFile(t, dir, "full.csv", statementFixture)

	svc := &recordingService{}
	if err := ProcessDirectory(context.Background(), dir, svc, 1); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Only the statement with buy trades reaches the service.
	if svc.calls != 1 {
		t.Fatalf("BuildReport calls: want 1, got %d", svc.calls)
	}
}

func TestProcessDirectory_NoFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "ignored")

	if err := ProcessDirectory(context.Background(), dir, &recordingService{}, 1); err == nil {
		t.Fatalf("expected error for directory without statements")
	}
}

func TestProcessDirectory_MissingDir(t *testing.T) {
	if err := ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "absent"), &recordingService{}, 1); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestProcessDirectory_PipelineErrorPropagates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", statementFixture)

	boom := errors.New("rate source down")
	err := ProcessDirectory(context.Background(), dir, &recordingService{err: boom}, 1)
	if !errors.Is(err, boom) {
		t.Fatalf("want pipeline error, got %v", err)
	}
}

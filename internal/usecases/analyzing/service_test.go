package analyzing

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/working-capital-api/infrastructure/repository/mocks"
	"github.com/vfg2006/working-capital-api/internal/domain"
	"github.com/vfg2006/working-capital-api/internal/usecases/turnover"
	"go.uber.org/mock/gomock"
)

func newServiceForTest(t *testing.T) (*Service, *mocks.MockSnapshotRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := &Service{
		snapshotRepo: mockRepo,
		calculator:   turnover.NewCalculator(),
		cache:        NewDatasetCache(5 * time.Minute),
	}

	return service, mockRepo
}

func repoSnapshots() []*domain.EntitySnapshot {
	return []*domain.EntitySnapshot{
		snapshot("24.4Q", domain.EntityDomestic, 500, 300, 100),
		snapshot("25.1Q", domain.EntityDomestic, 600, 350, 150),
		snapshot("25.1Q", domain.EntityChina, 200, 100, 50),
		snapshot("25.2Q", domain.EntityDomestic, 700, 400, 200),
	}
}

func TestService_WorkingCapitalReport_DefaultsRangeToDataset(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil)

	report, err := service.WorkingCapitalReport(&Filters{})
	require.NoError(t, err)

	assert.Equal(t, "24.4Q", report.Meta.StartQuarter)
	assert.Equal(t, "25.2Q", report.Meta.EndQuarter)
	assert.Equal(t, "25.2Q", report.Meta.LatestQuarter)
	assert.Equal(t, []string{"24.4Q", "25.1Q", "25.2Q"}, report.Meta.AllQuarters)
	assert.Equal(t, 4, report.Meta.Count)
	assert.False(t, report.Meta.Cached)

	for _, snap := range report.Data {
		assert.NotNil(t, snap.Metrics)
	}
}

func TestService_WorkingCapitalReport_ServesFromCache(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	// uma única ida ao banco para duas leituras
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil).Times(1)

	first, err := service.WorkingCapitalReport(&Filters{})
	require.NoError(t, err)
	assert.False(t, first.Meta.Cached)

	second, err := service.WorkingCapitalReport(&Filters{})
	require.NoError(t, err)
	assert.True(t, second.Meta.Cached)
}

func TestService_WorkingCapitalReport_InvalidateCacheForcesReload(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil).Times(2)

	_, err := service.WorkingCapitalReport(&Filters{})
	require.NoError(t, err)

	service.InvalidateCache()

	report, err := service.WorkingCapitalReport(&Filters{})
	require.NoError(t, err)
	assert.False(t, report.Meta.Cached)
}

func TestService_WorkingCapitalReport_RejectsBadFilters(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil).AnyTimes()

	_, err := service.WorkingCapitalReport(&Filters{StartQuarter: "trimestre3"})
	assert.ErrorIs(t, err, domain.ErrInvalidQuarterFormat)

	_, err = service.WorkingCapitalReport(&Filters{Entity: "JAPAN"})
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}

func TestService_WorkingCapitalReport_RepositoryFailure(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(nil, errors.New("conexão recusada"))

	_, err := service.WorkingCapitalReport(&Filters{})
	assert.Error(t, err)
}

func TestService_Turnover_FiltersQuarterAndEntity(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil)

	items, err := service.Turnover("25.1Q", "DOMESTIC")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "25.1Q", items[0].Quarter)
	assert.Equal(t, domain.EntityDomestic, items[0].Entity)
	assert.Equal(t, items[0].CCC, items[0].DSO+items[0].DIO-items[0].DPO)
}

func TestService_Turnover_AllSentinel(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil)

	items, err := service.Turnover("all", "all")
	require.NoError(t, err)
	assert.Len(t, items, 4)
}

func TestService_YoYDelta_ValidatesAtBoundary(t *testing.T) {
	service, mockRepo := newServiceForTest(t)
	mockRepo.EXPECT().GetAll().Return(repoSnapshots(), nil).AnyTimes()

	_, err := service.YoYDelta("25.1Q", "MARTE")
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)

	delta, err := service.YoYDelta("25.1Q", "DOMESTIC")
	require.NoError(t, err)
	assert.Equal(t, "24.1Q", delta.PriorQuarter)
}

func TestService_TrendSeries_ValidatesEntity(t *testing.T) {
	service, _ := newServiceForTest(t)

	_, err := service.TrendSeries("", []string{"25.1Q"})
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jellybean/emporium/internal/domain/catalog"
	"github.com/jellybean/emporium/internal/domain/shared"
)

// newMockFlavorRepository creates a GormFlavorRepository with a mocked SQL connection
func newMockFlavorRepository(t *testing.T) (*GormFlavorRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormFlavorRepository(gormDB), mock, mockDB
}

func TestNewGormFlavorRepository(t *testing.T) {
	t.Run("creates repository with valid DB", func(t *testing.T) {
		repo, _, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		assert.NotNil(t, repo)
		assert.NotNil(t, repo.db)
	})
}

func TestGormFlavorRepository_FindByID(t *testing.T) {
	t.Run("finds existing flavor", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "flavor", "image_key", "date_added"}).
			AddRow(uint64(1), "Watermelon", "watermelon.jpg", now)

		mock.ExpectQuery(`SELECT \* FROM "jellybean_flavors" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(uint64(1), 1).
			WillReturnRows(rows)

		flavor, err := repo.FindByID(context.Background(), 1)

		assert.NoError(t, err)
		assert.NotNil(t, flavor)
		assert.Equal(t, uint64(1), flavor.ID)
		assert.Equal(t, "Watermelon", flavor.Name)
		assert.Equal(t, "watermelon.jpg", flavor.ImageKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing flavor", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "jellybean_flavors" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(uint64(999), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		flavor, err := repo.FindByID(context.Background(), 999)

		assert.Error(t, err)
		assert.Nil(t, flavor)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFlavorRepository_FindAll(t *testing.T) {
	t.Run("returns all flavors ordered by id", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		now := time.Now()

		rows := sqlmock.NewRows([]string{"id", "flavor", "image_key", "date_added"}).
			AddRow(uint64(1), "Watermelon", "watermelon.jpg", now).
			AddRow(uint64(2), "Licorice", catalog.SentinelImageKey, now)

		mock.ExpectQuery(`SELECT \* FROM "jellybean_flavors" ORDER BY id ASC`).
			WillReturnRows(rows)

		flavors, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Len(t, flavors, 2)
		assert.Equal(t, "Watermelon", flavors[0].Name)
		assert.Equal(t, catalog.SentinelImageKey, flavors[1].ImageKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty slice for empty table", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "flavor", "image_key", "date_added"})

		mock.ExpectQuery(`SELECT \* FROM "jellybean_flavors" ORDER BY id ASC`).
			WillReturnRows(rows)

		flavors, err := repo.FindAll(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, flavors)
		assert.NotNil(t, flavors)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFlavorRepository_Create(t *testing.T) {
	t.Run("inserts flavor and assigns generated ID", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		flavor, err := catalog.NewFlavor("Watermelon", "watermelon.jpg")
		require.NoError(t, err)

		mock.ExpectQuery(`INSERT INTO "jellybean_flavors"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint64(7)))

		err = repo.Create(context.Background(), flavor)

		assert.NoError(t, err)
		assert.Equal(t, uint64(7), flavor.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFlavorRepository_Update(t *testing.T) {
	t.Run("updates name and image key", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		flavor := &catalog.Flavor{
			ID:        1,
			Name:      "Sour Watermelon",
			ImageKey:  "watermelon_v2.jpg",
			DateAdded: time.Now(),
		}

		mock.ExpectExec(`UPDATE "jellybean_flavors" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), flavor)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found when no rows are affected", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		flavor := &catalog.Flavor{
			ID:       999,
			Name:     "Ghost",
			ImageKey: catalog.SentinelImageKey,
		}

		mock.ExpectExec(`UPDATE "jellybean_flavors" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), flavor)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFlavorRepository_Delete(t *testing.T) {
	t.Run("deletes existing flavor", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "jellybean_flavors" WHERE id = \$1`).
			WithArgs(uint64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 1)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing flavor", func(t *testing.T) {
		repo, mock, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		mock.ExpectExec(`DELETE FROM "jellybean_flavors" WHERE id = \$1`).
			WithArgs(uint64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 999)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFlavorRepository_InterfaceCompliance(t *testing.T) {
	t.Run("implements FlavorRepository interface", func(t *testing.T) {
		repo, _, mockDB := newMockFlavorRepository(t)
		defer mockDB.Close()

		var _ catalog.FlavorRepository = repo
		var _ catalog.FlavorReader = repo
		var _ catalog.FlavorWriter = repo
	})
}

package repositories_test

import (
	"context"
	"testing"

	"assettracker/src/models"
	"assettracker/src/repositories"

	"assettracker/tests/init_test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartmentRepository(t *testing.T) {
	db := init_test.SetupTestDB(t)
	defer init_test.TruncateTables(t, db)

	repo := repositories.NewDepartmentRepository(db)
	ctx := context.Background()

	t.Run("Create and GetByID", func(t *testing.T) {
		description := "Information technology"
		department := &models.Department{Name: "IT", Description: &description}

		err := repo.Create(ctx, department)
		require.NoError(t, err)
		require.NotZero(t, department.ID)

		retrieved, err := repo.GetByID(ctx, department.ID)
		require.NoError(t, err)
		assert.Equal(t, "IT", retrieved.Name)
		require.NotNil(t, retrieved.Description)
		assert.Equal(t, description, *retrieved.Description)
	})

	t.Run("GetAll orders by name", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Department{Name: "Sales"}))
		require.NoError(t, repo.Create(ctx, &models.Department{Name: "Finance"}))

		departments, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(departments), 2)
		for i := 1; i < len(departments); i++ {
			assert.LessOrEqual(t, departments[i-1].Name, departments[i].Name)
		}
	})

	t.Run("UpdateFields", func(t *testing.T) {
		department := &models.Department{Name: "Ops"}
		require.NoError(t, repo.Create(ctx, department))

		err := repo.UpdateFields(ctx, department.ID, []repositories.FieldUpdate{
			{Column: "name", Value: "Operations"},
		})
		require.NoError(t, err)

		updated, err := repo.GetByID(ctx, department.ID)
		require.NoError(t, err)
		assert.Equal(t, "Operations", updated.Name)
	})

	t.Run("Exists and Delete", func(t *testing.T) {
		department := &models.Department{Name: "Disposable"}
		require.NoError(t, repo.Create(ctx, department))

		exists, err := repo.Exists(ctx, department.ID)
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, repo.Delete(ctx, department.ID))
		exists, err = repo.Exists(ctx, department.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

package service

import (
	"testing"

	"go-labstock/internal/apperror"
	"go-labstock/internal/model"
	"go-labstock/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newWasteService(db *gorm.DB) WasteService {
	return NewWasteService(repository.NewWasteRepo(db), db, nil)
}

func TestCreateLogValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)
	container := seedContainer(t, db, "W-001", 10, 0, true)

	cases := []struct {
		name  string
		input CreateLogInput
	}{
		{"missing description", CreateLogInput{Quantity: 1, ContainerID: container.ID}},
		{"zero quantity", CreateLogInput{Description: "spent solvent", ContainerID: container.ID}},
		{"missing container", CreateLogInput{Description: "spent solvent", Quantity: 1}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateLog(user.ID, tc.input); !apperror.IsKind(err, apperror.KindValidation) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
}

func TestCreateLogUnknownContainer(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)

	_, err := svc.CreateLog(user.ID, CreateLogInput{
		Description: "spent solvent",
		Quantity:    1,
		ContainerID: uuid.New(),
	})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCreateLogInactiveContainer(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)
	container := seedContainer(t, db, "W-002", 10, 5, false)

	_, err := svc.CreateLog(user.ID, CreateLogInput{
		Description: "spent solvent",
		Quantity:    1,
		ContainerID: container.ID,
	})
	if !apperror.IsKind(err, apperror.KindInactiveContainer) {
		t.Fatalf("expected inactive container error, got %v", err)
	}
	if got := reloadContainer(t, db, container).CurrentVolume; got != 5 {
		t.Fatalf("expected volume to remain 5, got %g", got)
	}
}

func TestCreateLogCapacityExceeded(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)
	container := seedContainer(t, db, "W-003", 10, 8, true)

	_, err := svc.CreateLog(user.ID, CreateLogInput{
		Description: "aqueous waste",
		Quantity:    3,
		ContainerID: container.ID,
	})
	if !apperror.IsKind(err, apperror.KindCapacityExceeded) {
		t.Fatalf("expected capacity exceeded error, got %v", err)
	}
	if got := reloadContainer(t, db, container).CurrentVolume; got != 8 {
		t.Fatalf("expected volume to remain 8, got %g", got)
	}

	var logs int64
	db.Model(&model.WasteLog{}).Count(&logs)
	if logs != 0 {
		t.Fatalf("expected no log rows after failed disposal, got %d", logs)
	}
}

func TestCreateLogIncrementsVolume(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)
	container := seedContainer(t, db, "W-004", 10, 8, true)

	entry, err := svc.CreateLog(user.ID, CreateLogInput{
		Description: "aqueous waste",
		Quantity:    2,
		ContainerID: container.ID,
	})
	if err != nil {
		t.Fatalf("create log: %v", err)
	}
	if entry.UserID != user.ID || entry.ContainerID != container.ID {
		t.Fatalf("log references wrong user or container: %+v", entry)
	}
	if entry.Date.IsZero() {
		t.Fatal("expected log date to be set")
	}

	// Filling exactly to capacity is allowed
	if got := reloadContainer(t, db, container).CurrentVolume; got != 10 {
		t.Fatalf("expected volume 10, got %g", got)
	}
}

func TestDeleteContainerWithHistoryConflicts(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	user := seedUser(t, db, "res@lab.local", model.RoleResearcher)
	container := seedContainer(t, db, "W-005", 10, 0, true)

	if _, err := svc.CreateLog(user.ID, CreateLogInput{
		Description: "halogenated waste",
		Quantity:    1,
		ContainerID: container.ID,
	}); err != nil {
		t.Fatalf("create log: %v", err)
	}

	if err := svc.DeleteContainer(container.ID); !apperror.IsKind(err, apperror.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestDeleteEmptyContainer(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	container := seedContainer(t, db, "W-006", 10, 0, true)

	if err := svc.DeleteContainer(container.ID); err != nil {
		t.Fatalf("delete container: %v", err)
	}

	containers, err := svc.ListContainers()
	if err != nil {
		t.Fatalf("list containers: %v", err)
	}
	if len(containers) != 0 {
		t.Fatalf("expected no containers, got %d", len(containers))
	}
}

func TestDeleteUnknownContainer(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)

	if err := svc.DeleteContainer(uuid.New()); !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdateContainerCannotShrinkBelowVolume(t *testing.T) {
	db := newTestDB(t)
	svc := newWasteService(db)
	container := seedContainer(t, db, "W-007", 10, 8, true)

	_, err := svc.UpdateContainer(container.ID, &model.WasteContainer{
		Identifier: "W-007",
		Capacity:   5,
		IsActive:   true,
	})
	if !apperror.IsKind(err, apperror.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

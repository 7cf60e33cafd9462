package master

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

var (
	ErrUnknownResource = errors.New("unknown resource")
	ErrNotFound        = errors.New("record not found")
	ErrBadPayload      = errors.New("invalid payload")
)

type MasterServiceAPI interface {
	List(resource string, filters map[string]string) (any, error)
	Get(resource string, id int) (any, error)
	Create(resource string, payload []byte) (any, error)
	Update(resource string, id int, payload []byte) (any, error)
	Patch(resource string, id int, fields map[string]any) (any, error)
	Delete(resource string, id int) error
}

type MasterService struct {
	DB       *gorm.DB
	Registry map[string]Resource
}

func NewMasterService(db *gorm.DB) *MasterService {
	return &MasterService{DB: db, Registry: Registry()}
}

func (ms *MasterService) resource(name string) (Resource, error) {
	res, ok := ms.Registry[name]
	if !ok {
		return Resource{}, ErrUnknownResource
	}
	return res, nil
}

func (ms *MasterService) List(resource string, filters map[string]string) (any, error) {
	res, err := ms.resource(resource)
	if err != nil {
		return nil, err
	}

	rows := res.Slice()
	q := ms.DB.Order("id ASC")
	for param, column := range res.Filterable {
		if v, ok := filters[param]; ok && v != "" {
			q = q.Where(column+" = ?", v)
		}
	}
	if err := q.Find(rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (ms *MasterService) Get(resource string, id int) (any, error) {
	res, err := ms.resource(resource)
	if err != nil {
		return nil, err
	}

	row := res.Model()
	if err := ms.DB.First(row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (ms *MasterService) Create(resource string, payload []byte) (any, error) {
	res, err := ms.resource(resource)
	if err != nil {
		return nil, err
	}

	row := res.Model()
	if err := json.Unmarshal(payload, row); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	// The server owns id assignment
	setID(row, 0)

	if err := ms.DB.Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (ms *MasterService) Update(resource string, id int, payload []byte) (any, error) {
	res, err := ms.resource(resource)
	if err != nil {
		return nil, err
	}

	row := res.Model()
	if err := ms.DB.First(row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(payload, row); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	setID(row, id)

	if err := ms.DB.Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (ms *MasterService) Patch(resource string, id int, fields map[string]any) (any, error) {
	res, err := ms.resource(resource)
	if err != nil {
		return nil, err
	}

	allowed := columnSet(res.Model())
	updates := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "created_at" || k == "updated_at" {
			continue
		}
		if _, ok := allowed[k]; !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrBadPayload, k)
		}
		updates[k] = v
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields", ErrBadPayload)
	}

	row := res.Model()
	if err := ms.DB.First(row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := ms.DB.Model(row).Updates(updates).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (ms *MasterService) Delete(resource string, id int) error {
	res, err := ms.resource(resource)
	if err != nil {
		return err
	}

	result := ms.DB.Delete(res.Model(), "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func setID(row any, id int) {
	v := reflect.ValueOf(row).Elem().FieldByName("ID")
	if v.IsValid() && v.CanSet() {
		v.SetInt(int64(id))
	}
}

// columnSet derives the patchable columns from the model's json tags,
// which match the column names across every registered resource.
func columnSet(model any) map[string]struct{} {
	t := reflect.TypeOf(model).Elem()
	out := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			continue
		}
		out[tag] = struct{}{}
	}
	return out
}

// Package seed loads reference data (client types, service catalog, clients) from YAML files.
// Loading is idempotent: rows are matched by name and only missing ones are created.
package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"business-manager-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ClientTypeData matches one entry of a client_types file
type ClientTypeData struct {
	Name string `yaml:"name"`
}

// CategoryData matches one entry of a service_categories file
type CategoryData struct {
	Name           string `yaml:"name"`
	PriorityNumber int    `yaml:"priority_number"`
}

// ServiceData matches one entry of a services file
type ServiceData struct {
	Name         string   `yaml:"name"`
	CategoryName string   `yaml:"category_name"`
	Description  string   `yaml:"description"`
	Price        float64  `yaml:"price"`
	TimelineDays int      `yaml:"timeline_days"`
	Requirements []string `yaml:"requirements,omitempty"`
}

// ClientData matches one entry of a clients file
type ClientData struct {
	Name           string `yaml:"name"`
	Company        string `yaml:"company"`
	Address        string `yaml:"address"`
	Email          string `yaml:"email"`
	ClientTypeName string `yaml:"client_type_name"`
}

// File is the union of every section a data file may carry
type File struct {
	ClientTypes       []ClientTypeData `yaml:"client_types"`
	ServiceCategories []CategoryData   `yaml:"service_categories"`
	Services          []ServiceData    `yaml:"services"`
	Clients           []ClientData     `yaml:"clients"`
}

// Summary counts created rows per table
type Summary struct {
	ClientTypes       int
	ServiceCategories int
	Services          int
	Clients           int
}

// ReadDir merges every .yaml and .yml file under dir
func ReadDir(dir string) (*File, error) {
	merged := &File{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file File
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		merged.ClientTypes = append(merged.ClientTypes, file.ClientTypes...)
		merged.ServiceCategories = append(merged.ServiceCategories, file.ServiceCategories...)
		merged.Services = append(merged.Services, file.Services...)
		merged.Clients = append(merged.Clients, file.Clients...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadDir reads dir and loads it in one transaction
func LoadDir(db *gorm.DB, dir string) (*Summary, error) {
	file, err := ReadDir(dir)
	if err != nil {
		return nil, err
	}
	return Load(db, file)
}

// Load creates the missing rows of file. Referenced names must exist in file or in the store.
func Load(db *gorm.DB, file *File) (*Summary, error) {
	summary := &Summary{}
	err := db.Transaction(func(tx *gorm.DB) error {
		typeIDs := make(map[string]uint)
		for _, data := range file.ClientTypes {
			row := models.ClientType{Name: data.Name, Status: models.RecordStatusActive}
			created, err := firstOrCreate(tx, &row, data.Name)
			if err != nil {
				return fmt.Errorf("client type %s: %w", data.Name, err)
			}
			typeIDs[data.Name] = row.ID
			summary.ClientTypes += created
		}

		categoryIDs := make(map[string]uint)
		for _, data := range file.ServiceCategories {
			row := models.ServiceCategory{Name: data.Name, PriorityNumber: data.PriorityNumber}
			created, err := firstOrCreate(tx, &row, data.Name)
			if err != nil {
				return fmt.Errorf("service category %s: %w", data.Name, err)
			}
			categoryIDs[data.Name] = row.ID
			summary.ServiceCategories += created
		}

		for _, data := range file.Services {
			categoryID, err := resolve(tx, &models.ServiceCategory{}, categoryIDs, data.CategoryName)
			if err != nil {
				return fmt.Errorf("service %s: %w", data.Name, err)
			}
			row := models.Service{
				Name:         data.Name,
				Description:  data.Description,
				CategoryID:   categoryID,
				Price:        data.Price,
				TimelineDays: data.TimelineDays,
			}
			for _, text := range data.Requirements {
				row.Requirements = append(row.Requirements, models.ServiceRequirement{Text: text})
			}
			created, err := firstOrCreate(tx, &row, data.Name)
			if err != nil {
				return fmt.Errorf("service %s: %w", data.Name, err)
			}
			summary.Services += created
		}

		for _, data := range file.Clients {
			typeID, err := resolve(tx, &models.ClientType{}, typeIDs, data.ClientTypeName)
			if err != nil {
				return fmt.Errorf("client %s: %w", data.Name, err)
			}
			row := models.Client{
				Name:         data.Name,
				Company:      data.Company,
				Address:      data.Address,
				Email:        data.Email,
				ClientTypeID: typeID,
				Status:       models.RecordStatusActive,
			}
			created, err := firstOrCreate(tx, &row, data.Name)
			if err != nil {
				return fmt.Errorf("client %s: %w", data.Name, err)
			}
			summary.Clients += created
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// firstOrCreate loads the row named name into row, creating row when none exists.
// It returns 1 when a row was created.
func firstOrCreate(tx *gorm.DB, row interface{}, name string) (int, error) {
	err := tx.Where("name = ?", name).First(row).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if err := tx.Create(row).Error; err != nil {
		return 0, err
	}
	return 1, nil
}

// resolve finds the id of a named row, first among rows loaded in this run
func resolve(tx *gorm.DB, model interface{}, loaded map[string]uint, name string) (uint, error) {
	if id, ok := loaded[name]; ok {
		return id, nil
	}
	var ids []uint
	err := tx.Model(model).Where("name = ?", name).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, fmt.Errorf("unknown reference %q", name)
	}
	loaded[name] = ids[0]
	return ids[0], nil
}

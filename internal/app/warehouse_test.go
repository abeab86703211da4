package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbweber/homelab/recordbook/internal/domain"
	"github.com/jbweber/homelab/recordbook/internal/testutil"
)

func TestWarehouseManager_SeedData(t *testing.T) {
	m := NewWarehouseManager(nil, nil, nil)
	require.NoError(t, m.SeedData(fixedNow))

	assert.Equal(t, 2, m.Electronics.Len())
	assert.Equal(t, 2, m.Groceries.Len())

	milk, err := m.Groceries.FindByID(1)
	require.NoError(t, err)
	assert.True(t, milk.ExpiryDate.Equal(fixedNow.AddDate(0, 0, 7)))
}

func TestSetStock(t *testing.T) {
	m := NewWarehouseManager(nil, nil, nil)
	require.NoError(t, m.SeedData(fixedNow))
	var out bytes.Buffer

	assert.True(t, SetStock[domain.ElectronicItem](&out, m.Electronics, 2, 25))
	phone, err := m.Electronics.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, 25, phone.Quantity)
	assert.Empty(t, out.String())

	assert.False(t, SetStock[domain.ElectronicItem](&out, m.Electronics, 1, -5))
	assert.Contains(t, out.String(), "quantity cannot be negative")
	laptop, err := m.Electronics.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 10, laptop.Quantity)

	out.Reset()
	assert.False(t, SetStock[domain.GroceryItem](&out, m.Groceries, 999, -5))
	assert.Contains(t, out.String(), "not found")
}

func TestRemoveItem(t *testing.T) {
	m := NewWarehouseManager(nil, nil, nil)
	require.NoError(t, m.SeedData(fixedNow))
	var out bytes.Buffer

	assert.False(t, RemoveItem[domain.GroceryItem](&out, m.Groceries, 999))
	assert.Contains(t, out.String(), "grocery item with ID 999: entity not found")
	assert.Equal(t, 2, m.Groceries.Len())

	assert.True(t, RemoveItem[domain.GroceryItem](&out, m.Groceries, 1))
	assert.Equal(t, 1, m.Groceries.Len())
}

func TestWarehouse_Run(t *testing.T) {
	var out bytes.Buffer
	wh := &Warehouse{Out: &out, Now: now}

	require.NoError(t, wh.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Grocery Items:\nID: 1, Name: Milk, Quantity: 50, Expires: 2025-03-21")
	assert.Contains(t, text, "ID: 2, Name: Smartphone, Quantity: 20, Brand: BrandB, Warranty: 12 months")
	assert.Contains(t, text, "electronic item with ID 1: entity already exists")
	assert.Contains(t, text, "grocery item with ID 999: entity not found")
	assert.Contains(t, text, "quantity cannot be negative")
	assert.Contains(t, text, "ID: 2, Name: Bread, Quantity: 45")
}

func TestWarehouse_SavesFinalStock(t *testing.T) {
	electronics := &testutil.MemLines{}
	groceries := &testutil.MemLines{}
	wh := &Warehouse{Out: &bytes.Buffer{}, Now: now, ElectronicsLog: electronics, GroceriesLog: groceries}

	require.NoError(t, wh.Run(context.Background()))

	assert.Equal(t, []string{"1,Laptop,10,BrandA,24", "2,Smartphone,20,BrandB,12"}, electronics.Lines)
	assert.Equal(t, []string{
		"1,Milk,50,2025-03-21T09:30:00Z",
		"2,Bread,45,2025-03-17T09:30:00Z",
	}, groceries.Lines)

	// Reloading skips nothing and restores the updated quantity
	loaded := NewWarehouseManager(nil, electronics, groceries)
	result, err := loaded.Groceries.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Loaded)
	assert.Empty(t, result.Skipped)
	bread, err := loaded.Groceries.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, 45, bread.Quantity)
}

func TestWarehouse_SaveFailureIsReported(t *testing.T) {
	var out bytes.Buffer
	wh := &Warehouse{Out: &out, Now: now, GroceriesLog: &testutil.MemLines{AppendErr: errors.New("disk full")}}

	require.NoError(t, wh.Run(context.Background()))
	assert.Contains(t, out.String(), "An error occurred while saving to file: failed to save grocery item records: disk full")
}

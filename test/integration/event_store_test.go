/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/campus-events-service/internal/events/model"
	"github.com/campusconnect/campus-events-service/internal/events/store"
)

func newEventStore(t *testing.T) *store.MongoEventStore {
	t.Helper()
	collectionName := "events_" + t.Name()
	t.Cleanup(func() {
		_ = testDatabase.Collection(collectionName).Drop(context.Background())
	})
	return store.NewMongoEventStore(testDatabase, collectionName)
}

func sampleEvent(title string, timestamp int64, uid string, eventType string) model.Event {
	start := time.UnixMilli(timestamp).UTC()
	return model.Event{
		Title:       title,
		Description: "An event",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Location:    "Main Hall",
		Type:        eventType,
		CreatedBy:   model.CreatedBy{UID: uid, Username: "jordan"},
		CreatedAt:   start.Format(time.RFC3339),
		Timestamp:   timestamp,
	}
}

func TestEventStore_InsertAndFindRoundTrip(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	inserted := sampleEvent("Open Mic Night", 1700000000000, "uid-1", "social")
	id, err := eventStore.Insert(ctx, inserted)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	found, err := eventStore.Find(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, inserted.Title, found.Title)
	assert.Equal(t, inserted.Description, found.Description)
	assert.Equal(t, inserted.Location, found.Location)
	assert.Equal(t, inserted.Type, found.Type)
	assert.Equal(t, inserted.CreatedBy, found.CreatedBy)
	assert.Equal(t, inserted.CreatedAt, found.CreatedAt)
	assert.Equal(t, inserted.Timestamp, found.Timestamp)
	assert.True(t, inserted.StartTime.Equal(found.StartTime.UTC()))
	assert.True(t, inserted.EndTime.Equal(found.EndTime.UTC()))
}

func TestEventStore_FindAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	found, err := eventStore.Find(ctx, "ffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = eventStore.Find(ctx, "not-a-hex-id")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestEventStore_FindAllSortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	_, err := eventStore.Insert(ctx, sampleEvent("Oldest", 1000, "uid-1", "social"))
	require.NoError(t, err)
	_, err = eventStore.Insert(ctx, sampleEvent("Newest", 3000, "uid-1", "social"))
	require.NoError(t, err)
	_, err = eventStore.Insert(ctx, sampleEvent("Middle", 2000, "uid-1", "social"))
	require.NoError(t, err)

	events, err := eventStore.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "Newest", events[0].Title)
	assert.Equal(t, "Middle", events[1].Title)
	assert.Equal(t, "Oldest", events[2].Title)
}

func TestEventStore_FindByOwnerAndType(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	_, err := eventStore.Insert(ctx, sampleEvent("Mine", 2000, "uid-1", "career"))
	require.NoError(t, err)
	_, err = eventStore.Insert(ctx, sampleEvent("Theirs", 1000, "uid-2", "food"))
	require.NoError(t, err)

	mine, err := eventStore.FindByOwner(ctx, "uid-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].Title)

	food, err := eventStore.FindByType(ctx, "food")
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, "Theirs", food[0].Title)
}

func TestEventStore_UpdateMergesSuppliedFieldsOnly(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	id, err := eventStore.Insert(ctx, sampleEvent("Board Games", 1000, "uid-1", "social"))
	require.NoError(t, err)

	err = eventStore.Update(ctx, id, map[string]interface{}{
		"location":  "Lounge 2",
		"updatedAt": "2025-03-14T10:00:00Z",
	})
	require.NoError(t, err)

	updated, err := eventStore.Find(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Lounge 2", updated.Location)
	assert.Equal(t, "2025-03-14T10:00:00Z", updated.UpdatedAt)
	assert.Equal(t, "Board Games", updated.Title, "untouched fields must survive the update")
	assert.Equal(t, "social", updated.Type)
}

func TestEventStore_DeleteRemovesSingleEvent(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	keepID, err := eventStore.Insert(ctx, sampleEvent("Keep", 2000, "uid-1", "social"))
	require.NoError(t, err)
	dropID, err := eventStore.Insert(ctx, sampleEvent("Drop", 1000, "uid-1", "social"))
	require.NoError(t, err)

	require.NoError(t, eventStore.Delete(ctx, dropID))

	dropped, err := eventStore.Find(ctx, dropID)
	require.NoError(t, err)
	assert.Nil(t, dropped)

	kept, err := eventStore.Find(ctx, keepID)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}

func TestEventStore_DeleteAllEmptiesCollection(t *testing.T) {
	ctx := context.Background()
	eventStore := newEventStore(t)

	_, err := eventStore.Insert(ctx, sampleEvent("One", 1000, "uid-1", "social"))
	require.NoError(t, err)
	_, err = eventStore.Insert(ctx, sampleEvent("Two", 2000, "uid-2", "food"))
	require.NoError(t, err)

	require.NoError(t, eventStore.DeleteAll(ctx))

	events, err := eventStore.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

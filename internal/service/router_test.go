package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"construction_web/internal/models"
)

// fakeStore 是測試用的記憶體訊息儲存，實作 repository.MessageRepository
type fakeStore struct {
	mu         sync.Mutex
	nextID     uint
	messages   []models.Message
	failAppend bool
}

func (f *fakeStore) Append(projectID, senderID uint, content string, kind models.MessageKind) (*models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAppend {
		return nil, errors.New("insert rejected")
	}
	f.nextID++
	message := models.Message{
		ID:        f.nextID,
		ProjectID: projectID,
		SenderID:  senderID,
		Content:   content,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	f.messages = append(f.messages, message)
	stored := message
	return &stored, nil
}

func (f *fakeStore) History(projectID, afterID uint, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Message
	for _, m := range f.messages {
		if m.ProjectID != projectID || m.ID <= afterID {
			continue
		}
		out = append(out, m)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// fakeProjects 是測試用的專案存在性檢查
type fakeProjects struct {
	ids map[uint]bool
}

func (f *fakeProjects) Exists(id uint) (bool, error) {
	return f.ids[id], nil
}

func newRouterFixture() (*ConnectionRegistry, *fakeStore, *BroadcastRouter) {
	registry := NewConnectionRegistry()
	store := &fakeStore{}
	projects := &fakeProjects{ids: map[uint]bool{7: true, 9: true}}
	return registry, store, NewBroadcastRouter(registry, store, projects)
}

func subscribed(registry *ConnectionRegistry, userID, projectID uint) *Client {
	client := newOpenClient(userID)
	registry.Register(client)
	registry.Subscribe(client, projectID)
	client.State = StateSubscribed
	return client
}

// recvFrame 非阻塞地讀一個訊息框，沒有時回傳 nil
func recvFrame(client *Client) *ServerFrame {
	select {
	case frame := <-client.SendChan:
		return frame
	default:
		return nil
	}
}

func TestPublishDeliversToAllRoomMembersIncludingSender(t *testing.T) {
	req := require.New(t)
	registry, store, router := newRouterFixture()

	a := subscribed(registry, 1, 7)
	b := subscribed(registry, 2, 7)
	c := subscribed(registry, 3, 9)

	message, err := router.Publish(7, 1, "Foundation poured", models.MessageKindText)
	req.NoError(err)
	req.NotZero(message.ID)
	req.Equal(1, store.count())

	// 發送者與同房間成員都收到同一則 delivered，ID 與時間戳一致
	frameA := recvFrame(a)
	frameB := recvFrame(b)
	req.NotNil(frameA)
	req.NotNil(frameB)
	req.Equal(FrameDelivered, frameA.Type)
	req.Equal(message.ID, frameA.Message.ID)
	req.Equal(message.ID, frameB.Message.ID)
	req.Equal(frameA.Message.CreatedAt, frameB.Message.CreatedAt)

	// 訂閱別的專案的連線什麼都收不到
	req.Nil(recvFrame(c))
}

func TestPublishEmptyContentIsRejectedWithoutStorage(t *testing.T) {
	req := require.New(t)
	registry, store, router := newRouterFixture()
	a := subscribed(registry, 1, 7)

	_, err := router.Publish(7, 1, "   ", models.MessageKindText)
	req.ErrorIs(err, ErrEmptyContent)
	req.Equal(0, store.count())
	req.Nil(recvFrame(a))
}

func TestPublishUnknownProjectIsRejectedWithoutStorage(t *testing.T) {
	req := require.New(t)
	_, store, router := newRouterFixture()

	_, err := router.Publish(42, 1, "hello", models.MessageKindText)
	req.ErrorIs(err, ErrUnknownProject)
	req.Equal(0, store.count())
}

func TestPublishInvalidKindIsRejected(t *testing.T) {
	req := require.New(t)
	_, store, router := newRouterFixture()

	_, err := router.Publish(7, 1, "hello", "video")
	req.ErrorIs(err, ErrInvalidKind)
	req.Equal(0, store.count())
}

func TestPublishDefaultsKindToText(t *testing.T) {
	req := require.New(t)
	_, _, router := newRouterFixture()

	message, err := router.Publish(7, 1, "hello", "")
	req.NoError(err)
	req.Equal(models.MessageKindText, message.Kind)
}

func TestPublishStorageFailureMeansNoDelivery(t *testing.T) {
	req := require.New(t)
	registry, store, router := newRouterFixture()
	a := subscribed(registry, 1, 7)
	store.failAppend = true

	_, err := router.Publish(7, 1, "hello", models.MessageKindText)
	req.ErrorIs(err, ErrStorage)
	req.Nil(recvFrame(a))
}

func TestPublishSlowPeerDoesNotAbortFanout(t *testing.T) {
	req := require.New(t)
	registry, _, router := newRouterFixture()

	a := subscribed(registry, 1, 7)

	// 一條發送緩衝已滿的連線
	slow := &Client{
		ID:       "slow",
		UserID:   2,
		State:    StateOpen,
		SendChan: make(chan *ServerFrame, 1),
		done:     make(chan struct{}),
	}
	registry.Register(slow)
	registry.Subscribe(slow, 7)
	slow.State = StateSubscribed
	slow.SendChan <- &ServerFrame{Type: FrameHistory}

	message, err := router.Publish(7, 1, "hello", models.MessageKindText)
	req.NoError(err)

	// 其他成員照常收到，發送者不會看到任何投遞錯誤
	frame := recvFrame(a)
	req.NotNil(frame)
	req.Equal(message.ID, frame.Message.ID)
}

func TestPublishOrderingPerProject(t *testing.T) {
	req := require.New(t)
	registry, store, router := newRouterFixture()

	observer := subscribed(registry, 99, 7)

	const publishers = 4
	const perPublisher = 25

	errCh := make(chan error, publishers*perPublisher)
	var wg sync.WaitGroup
	for p := 0; p < publishers; p++ {
		wg.Add(1)
		go func(sender uint) {
			defer wg.Done()
			for i := 0; i < perPublisher; i++ {
				_, err := router.Publish(7, sender, "msg", models.MessageKindText)
				errCh <- err
			}
		}(uint(p + 1))
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		req.NoError(err)
	}

	req.Equal(publishers*perPublisher, store.count())

	// 觀察者看到的順序必須與寫入順序一致：ID 嚴格遞增，沒有交錯
	var lastID uint
	for i := 0; i < publishers*perPublisher; i++ {
		frame := recvFrame(observer)
		req.NotNil(frame, "缺少第 %d 則訊息", i+1)
		req.Greater(frame.Message.ID, lastID)
		lastID = frame.Message.ID
	}
}

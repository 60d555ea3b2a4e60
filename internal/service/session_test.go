package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"construction_web/internal/models"
)

func newChatFixture() (*ChatService, *fakeStore, *ConnectionRegistry) {
	registry := NewConnectionRegistry()
	store := &fakeStore{}
	projects := &fakeProjects{ids: map[uint]bool{7: true, 9: true}}
	router := NewBroadcastRouter(registry, store, projects)
	history := NewHistoryService(store)
	chat := NewChatService(registry, router, history, projects)
	return chat, store, registry
}

// openClient 模擬一條完成握手並通過身分驗證的連線
func openClient(registry *ConnectionRegistry, userID uint) *Client {
	client := NewClient(nil, userID)
	client.State = StateOpen
	registry.Register(client)
	return client
}

func frameBytes(t *testing.T, frame ClientFrame) []byte {
	t.Helper()
	data, err := json.Marshal(frame)
	require.NoError(t, err)
	return data
}

func TestSendBeforeSubscribeIsProtocolError(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	client := openClient(registry, 1)

	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{
		Type: FrameSend, ProjectID: 7, Content: "hello",
	}))

	// 在訂閱前發送是連線層級的協議錯誤，且不留下任何儲存記錄
	req.ErrorIs(err, ErrBadFrame)
	req.Equal(0, store.count())
}

func TestMalformedFrameIsProtocolError(t *testing.T) {
	req := require.New(t)
	chat, _, registry := newChatFixture()
	client := openClient(registry, 1)

	req.ErrorIs(chat.HandleFrame(client, []byte("{not json")), ErrBadFrame)
	req.ErrorIs(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: "dance"})), ErrBadFrame)
}

func TestSubscribePrimesClientWithHistory(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	seedMessages(t, store, 7, "earlier", "latest")

	client := openClient(registry, 1)
	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7}))
	req.NoError(err)

	req.Equal(StateSubscribed, client.State)
	req.Equal(1, registry.RoomSize(7))

	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameHistory, frame.Type)
	req.Len(frame.Messages, 2)
	req.Equal("earlier", frame.Messages[0].Content)
}

func TestSubscribeWithLastSeenUsesCatchUp(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	ids := seedMessages(t, store, 7, "seen", "missed")

	client := openClient(registry, 1)
	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{
		Type: FrameSubscribe, ProjectID: 7, LastSeenID: ids[0],
	}))
	req.NoError(err)

	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameHistory, frame.Type)
	req.Len(frame.Messages, 1)
	req.Equal("missed", frame.Messages[0].Content)
}

func TestSubscribeUnknownProjectRejectedToSenderOnly(t *testing.T) {
	req := require.New(t)
	chat, _, registry := newChatFixture()
	client := openClient(registry, 1)

	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 42}))
	req.NoError(err, "驗證失敗不關閉連線")
	req.Equal(StateOpen, client.State)

	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameError, frame.Type)
}

func TestResubscribeReplacesRoom(t *testing.T) {
	req := require.New(t)
	chat, _, registry := newChatFixture()
	client := openClient(registry, 1)

	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 9})))

	req.Equal(0, registry.RoomSize(7))
	req.Equal(1, registry.RoomSize(9))
	req.Equal(uint(9), client.ProjectID)
}

func TestSendPublishesAndEchoesBack(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	client := openClient(registry, 1)

	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	recvFrame(client) // history

	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{
		Type: FrameSend, ProjectID: 7, Content: "Foundation poured", Kind: models.MessageKindText,
	}))
	req.NoError(err)
	req.Equal(1, store.count())

	// 發送者經由廣播的 echo-back 得到伺服器指派的 ID 與時間戳
	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameDelivered, frame.Type)
	req.NotZero(frame.Message.ID)
	req.False(frame.Message.CreatedAt.IsZero())
}

func TestSendEmptyContentRejectedToSenderWithoutStorage(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	client := openClient(registry, 1)

	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	recvFrame(client) // history

	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSend, ProjectID: 7, Content: ""}))
	req.NoError(err, "驗證失敗不關閉連線")
	req.Equal(0, store.count())

	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameError, frame.Type)
}

func TestSendToOtherProjectRejectedToSender(t *testing.T) {
	req := require.New(t)
	chat, store, registry := newChatFixture()
	client := openClient(registry, 1)

	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	recvFrame(client) // history

	err := chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSend, ProjectID: 9, Content: "hello"}))
	req.NoError(err)
	req.Equal(0, store.count())

	frame := recvFrame(client)
	req.NotNil(frame)
	req.Equal(FrameError, frame.Type)
}

func TestCloseIsTerminalAndUnregisters(t *testing.T) {
	req := require.New(t)
	chat, _, registry := newChatFixture()
	client := openClient(registry, 1)

	req.NoError(chat.HandleFrame(client, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))

	chat.Close(client)
	req.Equal(StateClosed, client.State)
	req.Equal(0, registry.RoomSize(7))

	// 重複關閉是安全的
	chat.Close(client)
	req.Equal(StateClosed, client.State)
}

// TestDisconnectAndCatchUpScenario 對應完整的斷線重連流程：
// A 與 B 在專案 7，C 在專案 9；A 發送後 A、B 收到同一則 delivered
// 而 C 什麼都沒有；B 斷線錯過一則，重連帶上 last_seen_id 後
// 恰好補回那一則。
func TestDisconnectAndCatchUpScenario(t *testing.T) {
	req := require.New(t)
	chat, _, registry := newChatFixture()

	a := openClient(registry, 1)
	b := openClient(registry, 2)
	c := openClient(registry, 3)
	req.NoError(chat.HandleFrame(a, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	req.NoError(chat.HandleFrame(b, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 7})))
	req.NoError(chat.HandleFrame(c, frameBytes(t, ClientFrame{Type: FrameSubscribe, ProjectID: 9})))
	recvFrame(a)
	recvFrame(b)
	recvFrame(c)

	req.NoError(chat.HandleFrame(a, frameBytes(t, ClientFrame{
		Type: FrameSend, ProjectID: 7, Content: "Foundation poured",
	})))

	deliveredA := recvFrame(a)
	deliveredB := recvFrame(b)
	req.NotNil(deliveredA)
	req.NotNil(deliveredB)
	req.Equal(deliveredA.Message.ID, deliveredB.Message.ID)
	req.Equal(deliveredA.Message.CreatedAt, deliveredB.Message.CreatedAt)
	req.Nil(recvFrame(c))
	lastSeen := deliveredB.Message.ID

	// B 斷線後 A 繼續發送
	chat.Close(b)
	req.NoError(chat.HandleFrame(a, frameBytes(t, ClientFrame{
		Type: FrameSend, ProjectID: 7, Content: "Slab next week",
	})))
	recvFrame(a)

	// B 重連，帶上最後看到的 ID，恰好補回錯過的那一則
	b2 := openClient(registry, 2)
	req.NoError(chat.HandleFrame(b2, frameBytes(t, ClientFrame{
		Type: FrameSubscribe, ProjectID: 7, LastSeenID: lastSeen,
	})))

	frame := recvFrame(b2)
	req.NotNil(frame)
	req.Equal(FrameHistory, frame.Type)
	req.Len(frame.Messages, 1)
	req.Equal("Slab next week", frame.Messages[0].Content)
	req.Equal(lastSeen+1, frame.Messages[0].ID)
}

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	// ErrUnavailable - соединение с хранилищем не было установлено.
	ErrUnavailable = errors.New("document store is not available")
	// ErrWrite - ошибка записи документа.
	ErrWrite = errors.New("document store write failed")
	// ErrRead - ошибка чтения документов.
	ErrRead = errors.New("document store read failed")
)

const connectTimeout = 10 * time.Second

// Store - единственная точка I/O против MongoDB. Экземпляр создается
// явно на старте процесса и передается вниз по слоям; один клиент
// переиспользуется всеми запросами (драйвер потокобезопасен).
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect устанавливает соединение и проверяет его пингом.
// Ошибка здесь не фатальна для приложения: вызывающая сторона может
// продолжить работу с nil-Store в деградированном режиме.
func Connect(ctx context.Context, url, name string) (*Store, error) {
	if url == "" || name == "" {
		return nil, fmt.Errorf("%w: database url or name is not configured", ErrUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Клиент создан, но хост недостижим: закрываем и остаемся
		// в состоянии "недоступен".
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Available сообщает, установлено ли соединение.
// Безопасен на nil-получателе.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name возвращает имя базы данных.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

// Insert сериализует документ, записывает его в коллекцию и
// возвращает назначенный хранилищем идентификатор как hex-строку.
func (s *Store) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWrite, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", ErrWrite, res.InsertedID)
	}

	return oid.Hex(), nil
}

// Query читает до limit документов коллекции по фильтру в естественном
// порядке хранилища и декодирует их в out (указатель на срез).
// Пустой результат - не ошибка: out остается пустым срезом.
func (s *Store) Query(ctx context.Context, collection string, filter bson.M, limit int64, out interface{}) error {
	if !s.Available() {
		return ErrUnavailable
	}

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRead, err)
	}

	return nil
}

// Ping проверяет живость соединения.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames возвращает имена коллекций базы.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return names, nil
}

// Close разрывает соединение. Вызывается из shutdown-хука процесса.
func (s *Store) Close(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	return s.client.Disconnect(ctx)
}

package kvstore

import "context"

// ClientNamespace é o prefixo das chaves de um cliente HTTP.
func ClientNamespace(token string) string {
	return "client:" + token + ":"
}

// NamespacedStore isola as chaves de um cliente dentro de um store compartilhado.
type NamespacedStore struct {
	inner  Store
	prefix string
}

func NewNamespacedStore(inner Store, prefix string) *NamespacedStore {
	return &NamespacedStore{inner: inner, prefix: prefix}
}

func (s *NamespacedStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Load(ctx, s.prefix+key)
}

func (s *NamespacedStore) Save(ctx context.Context, key string, data []byte) error {
	return s.inner.Save(ctx, s.prefix+key, data)
}

func (s *NamespacedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

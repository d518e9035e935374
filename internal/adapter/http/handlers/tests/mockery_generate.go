package tests

// Mock generation for handler tests. The hand-written mocks in mocks_test.go
// follow the same shape and can be swapped for the generated ones.
//
// Usage:
//   go generate ./internal/adapter/http/handlers/tests
//
//go:generate mockery --name TaskService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename task_service_mock.go --with-expecter
//go:generate mockery --name UserService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename user_service_mock.go --with-expecter
//go:generate mockery --name PreferenceService --dir ../../../../core/ports --output ./mocks --outpkg mocks --filename preference_service_mock.go --with-expecter

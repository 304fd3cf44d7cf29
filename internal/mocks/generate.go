package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SnapshotReader --dir ../domain/placement --output domain/placement --outpkg placementmock --filename snapshot_reader_mock.go

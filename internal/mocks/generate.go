package mocks

//go:generate mockery --name EventStore --srcpkg github.com/pinkpig777/cinestats/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Catalog --srcpkg github.com/pinkpig777/cinestats/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter

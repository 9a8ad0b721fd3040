package actors

import (
	"log"

	"backprop/dataset"
	"backprop/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type LoadingActor struct{}

func newLoadingActor() actor.Actor {
	return &LoadingActor{}
}

func (state *LoadingActor) Receive(context actor.Context) {
	switch msg := context.Message().(type) {
	case *messages.LoadDataSets:
		log.Println("Loading Actor started:", context.Self().String())
		sets, err := load(msg)
		if err != nil {
			context.Respond(&messages.Failed{Err: err})
			return
		}
		context.Respond(sets)

	case *actor.Stopped:
		log.Println("Loading Actor stopped:", context.Self().String())
	}
}

func load(msg *messages.LoadDataSets) (*messages.DataSets, error) {
	train, err := dataset.Load(msg.TrainPath)
	if err != nil {
		return nil, err
	}
	if msg.TestPath == "" {
		train, test := dataset.Split(train, msg.SplitRatio, msg.Seed)
		return &messages.DataSets{Training: train, Test: test}, nil
	}

	test, err := dataset.Load(msg.TestPath)
	if err != nil {
		return nil, err
	}
	return &messages.DataSets{Training: train, Test: test}, nil
}
